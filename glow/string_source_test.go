package glow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticStringSourceNotifies(t *testing.T) {
	r := require.New(t)
	src := NewStaticStringSource("a")
	l := &recordingListener{}
	src.RegisterListener(l)
	src.RegisterListener(l)

	src.SetString("b")
	r.Equal("b", src.String())
	r.Equal([]string{"b"}, src.Strings())
	r.Len(l.notified, 1)
	r.Same(src, l.notified[0])

	src.DeregisterListener(l)
	src.SetString("c")
	r.Len(l.notified, 1)
}

func TestCompositeStringSourceForwardsChanges(t *testing.T) {
	r := require.New(t)
	header := NewStaticStringSource("#version 430 core\n")
	body := NewStaticStringSource("void main() {}\n")
	composite := NewCompositeStringSource(header, body)
	l := &recordingListener{}
	composite.RegisterListener(l)

	r.Equal("#version 430 core\nvoid main() {}\n", composite.String())
	r.Equal([]string{"#version 430 core\n", "void main() {}\n"}, composite.Strings())

	header.SetString("#version 450 core\n")
	r.Len(l.notified, 1)
	r.Same(composite, l.notified[0])

	composite.AppendSource(NewStaticStringSource("// tail\n"))
	r.Len(l.notified, 2)
	r.Len(composite.Sources(), 3)
	r.Equal("#version 450 core\nvoid main() {}\n// tail\n", composite.String())
}
