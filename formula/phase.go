package formula

import (
	"fmt"
	"strings"
)

// Phase is a set of lifecycle stages during which a dependency is needed.
type Phase uint8

const (
	Build Phase = 1 << iota
	Link
	Run
)

// AllPhases is build, link and run together.
const AllPhases = Build | Link | Run

var phaseNames = []struct {
	phase Phase
	name  string
}{
	{Build, "build"},
	{Link, "link"},
	{Run, "run"},
}

// Has reports whether p contains any phase of q.
func (p Phase) Has(q Phase) bool {
	return p&q != 0
}

// Names returns the phase names in p in build, link, run order.
func (p Phase) Names() []string {
	var names []string
	for _, pn := range phaseNames {
		if p.Has(pn.phase) {
			names = append(names, pn.name)
		}
	}
	return names
}

func (p Phase) String() string {
	return strings.Join(p.Names(), ",")
}

// ParsePhase folds phase names ("build", "link", "run") into a Phase.
func ParsePhase(names ...string) (Phase, error) {
	var p Phase
next:
	for _, name := range names {
		for _, pn := range phaseNames {
			if pn.name == name {
				p |= pn.phase
				continue next
			}
		}
		return 0, fmt.Errorf("unknown dependency phase %q", name)
	}
	return p, nil
}
