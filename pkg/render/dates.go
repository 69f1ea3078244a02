package render

const (
	DashSeparator   = " - "
	EmDashSeparator = " — "
)

// FormatDateRange renders "start<sep>end", with "Present" for an empty end.
// Without a start date nothing is rendered.
func FormatDateRange(start, end, sep string) string {
	if start == "" {
		return ""
	}
	if end == "" {
		end = "Present"
	}
	return start + sep + end
}
