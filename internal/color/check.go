package color

// Level thresholds from WCAG 2.1.
const (
	aaLargeThreshold  = 3.0
	aaNormalThreshold = 4.5
	aaaThreshold      = 7.0
)

// Result is the outcome of a contrast check. Supported is false when
// any of the three inputs failed to parse, in which case the other
// fields are meaningless.
type Result struct {
	Supported bool
	Ratio     float64
	AALarge   bool
	AANormal  bool
	AAA       bool
}

// Check parses a foreground, background, and opaque backdrop, flattens
// any translucency against the backdrop, and reports the WCAG contrast
// ratio with pass/fail verdicts. Opaque colors are used as-is. Any
// unparseable input degrades to an unsupported result rather than an
// error.
func Check(fg, bg, backdrop string) Result {
	f, ok := Parse(fg)
	if !ok {
		return Result{}
	}
	b, ok := Parse(bg)
	if !ok {
		return Result{}
	}
	drop, ok := Parse(backdrop)
	if !ok {
		return Result{}
	}

	if f.A < 1 {
		f = CompositeOver(drop, f)
	}
	if b.A < 1 {
		b = CompositeOver(drop, b)
	}

	ratio := ContrastRatio(f, b)
	return Result{
		Supported: true,
		Ratio:     ratio,
		AALarge:   ratio >= aaLargeThreshold,
		AANormal:  ratio >= aaNormalThreshold,
		AAA:       ratio >= aaaThreshold,
	}
}
