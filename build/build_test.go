package build_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lestrrat-go/xmlom/build"
	"github.com/lestrrat-go/xmlom/node"
	"github.com/lestrrat-go/xmlom/s11n"
	"github.com/stretchr/testify/require"
)

func dump(t *testing.T, doc *node.Document) string {
	t.Helper()
	var buf bytes.Buffer
	var d s11n.Dumper
	require.NoError(t, d.DumpDoc(&buf, doc))
	return buf.String()
}

func TestDocument(t *testing.T) {
	t.Run("nested entities", func(t *testing.T) {
		doc, err := build.Document("fuc",
			build.Attr("versao", "1.0"),
			build.Element("avaliacao",
				build.Element("componente", build.Attr("nome", "Dissertação"), build.Attr("peso", "30%"), build.Attr("nota", "18")),
				build.Element("componente", build.Attr("nome", "Apresentação"), build.Attr("peso", "40%"), build.Attr("nota", "18")),
				build.Element("componente", build.Attr("nome", "Discussão"), build.Attr("peso", "50%"), build.Attr("nota", "18")),
			),
		)
		require.NoError(t, err)
		require.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>
<fuc versao="1.0">
  <avaliacao>
    <componente nome="Dissertação" peso="30%" nota="18"/>
    <componente nome="Apresentação" peso="40%" nota="18"/>
    <componente nome="Discussão" peso="50%" nota="18"/>
  </avaliacao>
</fuc>
`, dump(t, doc))
	})

	t.Run("same tree as the node API", func(t *testing.T) {
		doc, err := build.Document("school",
			build.Element("class",
				build.Attr("name", "Math"),
				build.Element("student", build.Attr("name", "John")),
			),
		)
		require.NoError(t, err)

		root, err := node.NewEntity("school")
		require.NoError(t, err)
		class, err := node.NewEntity("class")
		require.NoError(t, err)
		attr, err := node.NewAttribute("name", "Math")
		require.NoError(t, err)
		require.NoError(t, class.AddAttribute(attr))
		student, err := node.NewEntity("student")
		require.NoError(t, err)
		attr, err = node.NewAttribute("name", "John")
		require.NoError(t, err)
		require.NoError(t, student.AddAttribute(attr))
		require.NoError(t, class.AddChildren(student))
		require.NoError(t, root.AddChildren(class))
		expected, err := node.NewDocument(root)
		require.NoError(t, err)

		require.Equal(t, dump(t, expected), dump(t, doc))
	})

	t.Run("invariant violations", func(t *testing.T) {
		testcases := []struct {
			name  string
			items []build.Item
			err   error
		}{
			{"bad attribute name", []build.Item{build.Attr("a b", "x")}, node.ErrInvalidArgument},
			{"bad element name", []build.Item{build.Element("x")}, node.ErrInvalidArgument},
			{"duplicate attribute", []build.Item{build.Attr("a", "1"), build.Attr("a", "2")}, node.ErrDuplicateAttribute},
			{"text then child", []build.Item{build.Text("hi"), build.Element("child")}, node.ErrTextChildConflict},
			{"child then text", []build.Item{build.Element("child"), build.Text("hi")}, node.ErrTextChildConflict},
			{"equivalent siblings", []build.Item{build.Element("child"), build.Element("child")}, node.ErrDuplicateEquivalent},
		}
		for _, tc := range testcases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := build.Document("root", tc.items...)
				require.ErrorIs(t, err, tc.err)
			})
		}
	})

	t.Run("bad root name", func(t *testing.T) {
		_, err := build.Document("r")
		require.ErrorIs(t, err, node.ErrInvalidArgument)
	})
}

const planoYAML = `
version: "1.0"
encoding: UTF-8
root:
  name: plano
  children:
    - name: curso
      text: Mestrado em Engenharia Informática
    - name: fuc
      attributes:
        codigo: M4310
      children:
        - name: nome
          text: Programação Avançada
        - name: ects
          text: 6.0
        - name: avaliacao
          children:
            - name: componente
              attributes:
                nome: Quizzes
                peso: 20%
            - name: componente
              attributes:
                peso: 80%
                nome: Projeto
`

func TestFromYAML(t *testing.T) {
	t.Run("plano", func(t *testing.T) {
		doc, err := build.FromYAML([]byte(planoYAML))
		require.NoError(t, err)
		require.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>
<plano>
  <curso>Mestrado em Engenharia Informática</curso>
  <fuc codigo="M4310">
    <nome>Programação Avançada</nome>
    <ects>6.0</ects>
    <avaliacao>
      <componente nome="Quizzes" peso="20%"/>
      <componente peso="80%" nome="Projeto"/>
    </avaliacao>
  </fuc>
</plano>
`, dump(t, doc))
	})

	t.Run("defaults", func(t *testing.T) {
		doc, err := build.ReadYAML(strings.NewReader("root:\n  name: root\n"))
		require.NoError(t, err)
		require.Equal(t, node.DefaultVersion, doc.Version())
		require.Equal(t, node.DefaultEncoding, doc.Encoding())
	})

	t.Run("errors", func(t *testing.T) {
		testcases := []struct {
			name string
			src  string
			err  error
		}{
			{"no root", "version: \"1.0\"\n", node.ErrInvalidArgument},
			{"bad version", "version: \"2.0\"\nroot:\n  name: root\n", node.ErrInvalidArgument},
			{"bad encoding", "encoding: ASCII\nroot:\n  name: root\n", node.ErrInvalidArgument},
			{"attributes not a mapping", "root:\n  name: root\n  attributes: [a, b]\n", node.ErrInvalidArgument},
			{"nested attribute value", "root:\n  name: root\n  attributes:\n    a:\n      b: c\n", node.ErrInvalidArgument},
			{"text and children", "root:\n  name: root\n  text: hi\n  children:\n    - name: child\n", node.ErrTextChildConflict},
			{"null child", "root:\n  name: root\n  children:\n    -\n", node.ErrInvalidArgument},
		}
		for _, tc := range testcases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := build.FromYAML([]byte(tc.src))
				require.ErrorIs(t, err, tc.err)
			})
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := build.FromYAML([]byte("root: [\n"))
		require.Error(t, err)
		_, err = build.FromYAML([]byte("root:\n  name: root\n  colour: red\n"))
		require.Error(t, err)
		_, err = build.FromYAML(nil)
		require.Error(t, err)
	})
}
