package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/appengine-ltd/goose-world/internal/world"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	tokens, err := world.TokenCatalogue()
	if err != nil {
		fatal(err)
	}
	locations, err := world.LocationCatalogue()
	if err != nil {
		fatal(err)
	}
	rules, err := world.DefaultRules(world.DefaultOptions())
	if err != nil {
		fatal(err)
	}

	files := []docFile{
		generateTokensDoc(tokens),
		generateLocationsDoc(locations),
		generateRegionsDoc(rules.Graph()),
		generateOptionsDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateTokensDoc(c *world.TokenCatalog) docFile {
	items := c.All()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	var b strings.Builder
	b.WriteString("# Tokens\n\n")
	b.WriteString("Source: `internal/world/tokens.go` (`DefaultTokens`).\n\n")
	b.WriteString(fmt.Sprintf("Total tokens: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Classification | Group |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, t := range items {
		b.WriteString("| ")
		b.WriteString(strconv.FormatInt(t.ID, 10))
		b.WriteString(" | ")
		b.WriteString(escape(string(t.Name)))
		b.WriteString(" | ")
		b.WriteString(escape(string(t.Class)))
		b.WriteString(" | ")
		b.WriteString(escape(string(t.Group)))
		b.WriteString(" |\n")
	}
	return docFile{Name: "tokens.md", Title: "Tokens", Content: b.String()}
}

func generateLocationsDoc(c *world.LocationCatalog) docFile {
	items := c.All()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Group != items[j].Group {
			return items[i].Group < items[j].Group
		}
		return items[i].ID < items[j].ID
	})

	var b strings.Builder
	b.WriteString("# Locations\n\n")
	b.WriteString("Source: `internal/world/location_data.go` (`DefaultLocations`).\n\n")
	b.WriteString(fmt.Sprintf("Total locations: **%d** across %d groups. ", len(items), len(c.Groups())))
	b.WriteString("Which groups are active depends on the options.\n\n")
	b.WriteString("| ID | Name | Region | Group |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, l := range items {
		b.WriteString("| ")
		b.WriteString(strconv.FormatInt(l.ID, 10))
		b.WriteString(" | ")
		b.WriteString(escape(string(l.Name)))
		b.WriteString(" | ")
		b.WriteString(escape(string(l.Region)))
		b.WriteString(" | ")
		b.WriteString(escape(string(l.Group)))
		b.WriteString(" |\n")
	}
	return docFile{Name: "locations.md", Title: "Locations", Content: b.String()}
}

func generateRegionsDoc(g *world.RegionGraph) docFile {
	var b strings.Builder
	b.WriteString("# Regions\n\n")
	b.WriteString("Source: `internal/world/regions.go` (`buildRegionGraph`).\n\n")
	b.WriteString("| Region | Locations |\n")
	b.WriteString("| --- | --- |\n")
	for _, r := range g.Regions() {
		b.WriteString("| ")
		b.WriteString(escape(string(r)))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(len(g.LocationsIn(r))))
		b.WriteString(" |\n")
	}

	b.WriteString("\n## Entrances\n\n")
	b.WriteString("| Entrance | From | To |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, e := range g.Entrances() {
		b.WriteString("| ")
		b.WriteString(escape(e.Name))
		b.WriteString(" | ")
		b.WriteString(escape(string(e.From)))
		b.WriteString(" | ")
		b.WriteString(escape(string(e.To)))
		b.WriteString(" |\n")
	}
	return docFile{Name: "regions.md", Title: "Regions", Content: b.String()}
}

func generateOptionsDoc() docFile {
	items := world.DescribeOptions()

	var b strings.Builder
	b.WriteString("# Options\n\n")
	b.WriteString("Source: `internal/world/options.go` (`DefaultOptions`). ")
	b.WriteString("Use these names as keys in the YAML options file.\n\n")
	b.WriteString("| Option | Default | Allowed |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, o := range items {
		b.WriteString("| `")
		b.WriteString(o.Name)
		b.WriteString("` | ")
		b.WriteString(escape(o.Default))
		b.WriteString(" | ")
		b.WriteString(escape(o.Allowed))
		b.WriteString(" |\n")
	}
	return docFile{Name: "options.md", Title: "Options", Content: b.String()}
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
