package email

// Template names an embedded e-mail template.
type Template string

const (
	// TemplatePhaseThreshold corresponds to templates/phase_threshold.html
	TemplatePhaseThreshold Template = "phase_threshold"
)

func (t Template) file() string {
	return string(t) + ".html"
}
