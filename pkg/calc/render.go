package calc

// Screen is what the presentation layer draws: the primary display and, above
// it, the stored operand with its operator ("12 +").
type Screen struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Render returns the screen for s.
func Render(s State) Screen {
	scr := Screen{Primary: s.Display}
	if s.Pending != nil {
		scr.Secondary = FormatNumber(s.Pending.Accumulator) + " " + s.Pending.Op.Symbol()
	}
	return scr
}
