// Package scoreboard models MCCMD score cells and the fluent command
// builder that assembles sequences of commands against them. It is the
// home of both the scoreboard model (component C) and the formula builder
// (component B): the builder holds a command list and a list of
// Scoreboards to free, so keeping the two together avoids a dependency
// cycle between
// "what a scoreboard is" and "what mints one".
package scoreboard

import (
	"strings"

	"github.com/mcpp-lang/mcpp/lang/command"
	"github.com/mcpp-lang/mcpp/lang/types"
)

// Scoreboard is a named MCCMD score cell: a triple of (name, scope,
// datatype). Two Scoreboards are interchangeable iff their composed player
// names are identical.
type Scoreboard struct {
	Name     string
	Scope    []string
	Datatype types.Type
}

// McName composes the MCCMD player name: "#<scope…>.<name>" when Scope is
// non-empty, else "#<name>".
func (s *Scoreboard) McName() string {
	if len(s.Scope) == 0 {
		return "#" + s.Name
	}
	return "#" + strings.Join(s.Scope, ".") + "." + s.Name
}

// Target returns the command.ScoreTarget referring to this cell.
func (s *Scoreboard) Target() command.ScoreTarget {
	return command.ScoreTarget{Player: s.McName()}
}

// Free returns the command that releases this cell on the MCCMD side.
func (s *Scoreboard) Free() command.Command {
	return command.Free{Target: s.Target()}
}
