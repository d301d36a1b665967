package app

import "mathgraph/hal"

var _ hal.Logger = teeLogger{}

// teeLogger sends every line to the host logger and to the on-screen console.
type teeLogger struct {
	out hal.Logger
	con *console
}

func (l teeLogger) WriteLineString(s string) {
	if l.out != nil {
		l.out.WriteLineString(s)
	}
	l.con.add(s)
}

func (l teeLogger) WriteLineBytes(b []byte) {
	if l.out != nil {
		l.out.WriteLineBytes(b)
	}
	l.con.add(string(b))
}
