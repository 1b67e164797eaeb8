package object

// Effect computes the child object spawned at room start for kinds
// that pair a parent shell with a separately-animated hazard (spec
// §4.B): Candle spawns a Flame, Drip a Drop, Fishbowl a Fish, Toaster
// a Toast, Teakettle a Steam puff generator. The child starts at the
// parent's own Position; no offset is derived from the parent's area.
// The second return is false for kinds with no paired child.
func (o Object) Effect() (Object, bool) {
	switch o.Kind.Code {
	case Candle:
		return Object{Kind: Kind{Code: Flame, Height: o.Kind.Height}, Position: o.Position}, true
	case Drip:
		return Object{Kind: Kind{Code: Drop, Range: o.Kind.Range}, Position: o.Position}, true
	case Fishbowl:
		return Object{Kind: Kind{Code: Fish, Range: o.Kind.Range, Delay: o.Kind.Delay}, Position: o.Position}, true
	case Toaster:
		return Object{Kind: Kind{Code: Toast, Range: o.Kind.Range, Delay: o.Kind.Delay}, Position: o.Position}, true
	case Teakettle:
		return Object{Kind: Kind{Code: Steam, Delay: o.Kind.Delay}, Position: o.Position}, true
	default:
		return Object{}, false
	}
}
