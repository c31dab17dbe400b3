package console

import (
	"fmt"
	"io"

	"github.com/mylesmegyesi/clojure.core/pkg/lang"
	"gopkg.in/yaml.v3"
)

// Dump formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// NamespaceInfo describes a namespace and its mappings.
type NamespaceInfo struct {
	Name    string    `yaml:"name"`
	Current bool      `yaml:"current,omitempty"`
	Vars    []VarInfo `yaml:"vars"`
}

// VarInfo describes a mapping in a namespace.  Referred is true when the var
// is owned by a different namespace.
type VarInfo struct {
	Name     string `yaml:"name"`
	Var      string `yaml:"var"`
	Value    string `yaml:"value"`
	Doc      string `yaml:"doc,omitempty"`
	Macro    bool   `yaml:"macro,omitempty"`
	Referred bool   `yaml:"referred,omitempty"`
}

// Describe returns a description of every namespace in reg, sorted by name.
func Describe(reg *lang.Registry) []NamespaceInfo {
	cur, _ := reg.CurrentNamespace()
	var infos []NamespaceInfo
	for _, ns := range reg.Namespaces() {
		info := NamespaceInfo{
			Name:    ns.Name().String(),
			Current: ns == cur,
			Vars:    []VarInfo{},
		}
		mappings := ns.Mappings()
		for _, name := range ns.Symbols() {
			v := mappings[name]
			vinfo := VarInfo{
				Name:     name.String(),
				Var:      v.String(),
				Value:    lang.Format(v.Value()),
				Macro:    v.IsMacro(),
				Referred: v.Namespace() != ns,
			}
			if doc, ok := v.Meta(lang.DocKey); ok {
				vinfo.Doc, _ = doc.(string)
			}
			info.Vars = append(info.Vars, vinfo)
		}
		infos = append(infos, info)
	}
	return infos
}

// Dump writes a description of reg to w in the given format.
func Dump(w io.Writer, reg *lang.Registry, format string) error {
	infos := Describe(reg)
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(infos)
		if err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		for _, info := range infos {
			mark := ""
			if info.Current {
				mark = " (current)"
			}
			fmt.Fprintf(w, "%s%s\n", info.Name, mark)
			for _, v := range info.Vars {
				fmt.Fprintf(w, "  %s\t%s\t%s\n", v.Name, v.Var, v.Value)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %q", format)
	}
}
