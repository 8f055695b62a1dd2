package linux

import "github.com/sf-go/sf/pal"

var (
	_ pal.Clock     = Clock{}
	_ pal.Lock      = (*Spinlock)(nil)
	_ pal.Thread    = (*Thread)(nil)
	_ pal.SelfSched = SelfSched{}
	_ pal.Socket    = (*Socket)(nil)
	_ pal.Console   = Console{}
)
