// Command render turns a stored resume document into HTML and, optionally, PDF.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
	"github.com/capsloque-org/ResumeBuilder/internal/model"
	"github.com/capsloque-org/ResumeBuilder/pkg/client"
	infra "github.com/capsloque-org/ResumeBuilder/pkg/infrastructure"
	"github.com/capsloque-org/ResumeBuilder/pkg/render"
)

func main() {
	in := flag.String("in", "resume.json", "resume document (current or legacy shape)")
	out := flag.String("out", filepath.Join("resume-data", "generated", "resume.html"), "output HTML path")
	tpl := flag.String("template", "", "template id; defaults to the document's active template")
	pdf := flag.Bool("pdf", false, "also print a PDF next to the HTML output")
	chrome := flag.String("chrome", os.Getenv("CHROME_PATH"), "chrome executable")
	api := flag.Bool("api", false, "load the stored document from the service (RESUME_API_URL, RESUME_USER_ID) instead of -in")
	flag.Parse()

	b, err := readDocument(*in, *api)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
		os.Exit(2)
	}
	doc, shape, err := model.DecodeDocument(b, domain.DefaultIDs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(2)
	}
	if shape != model.ShapeCurrent {
		fmt.Printf("migrated %s document\n", shape)
	}

	t := doc.ActiveTemplate
	if *tpl != "" {
		var ok bool
		if t, ok = domain.ParseTemplate(*tpl); !ok {
			fmt.Fprintf(os.Stderr, "unknown template %q\n", *tpl)
			os.Exit(2)
		}
	}

	page := render.Project(doc, t, nil)
	html, err := render.Document(page, render.DocumentOptions{Title: title(doc)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create out dir: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(*out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write html: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)

	if !*pdf {
		return
	}
	r := infra.NewChromedpRenderer(*chrome, 60*time.Second)
	data, err := r.RenderHTMLToPDF(context.Background(), html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "print pdf: %v\n", err)
		os.Exit(1)
	}
	pdfPath := strings.TrimSuffix(*out, filepath.Ext(*out)) + ".pdf"
	if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write pdf: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", pdfPath)
}

func readDocument(path string, api bool) ([]byte, error) {
	if !api {
		return os.ReadFile(path)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return client.NewFromEnv().Load(ctx)
}

func title(doc domain.Resume) string {
	if doc.PersonalInfo.FullName == "" {
		return "Resume"
	}
	return doc.PersonalInfo.FullName + " - Resume"
}
