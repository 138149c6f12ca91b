package docs

import (
	"github.com/footprint-tools/repl/internal/log"
	"github.com/footprint-tools/repl/internal/usage"
	"github.com/spf13/afero"
)

// Provider answers documentation lookups by canonical key. It is read-only
// once constructed.
type Provider struct {
	entries map[Key]Entry
	owners  []string
}

// NewProvider loads every source from fs. Any unreadable or malformed
// source fails the whole construction.
func NewProvider(fs afero.Fs, sources ...Source) (*Provider, error) {
	p := Empty()
	for _, src := range sources {
		entries, err := load(fs, src)
		if err != nil {
			return nil, usage.DocumentationLoad(src.Owner, src.Path, err)
		}
		p.add(src.Owner, entries)
		log.Debug("docs: loaded %d entries for %s from %s", len(entries), src.Owner, src.Path)
	}
	return p, nil
}

// FromEntries builds a provider from already decoded entries.
func FromEntries(owner string, entries []Entry) *Provider {
	p := Empty()
	p.add(owner, entries)
	return p
}

// Empty returns a provider with no entries.
func Empty() *Provider {
	return &Provider{entries: make(map[Key]Entry)}
}

// Merge combines providers in order. The first entry seen for a key wins.
func Merge(providers ...*Provider) *Provider {
	merged := Empty()
	for _, p := range providers {
		if p == nil {
			continue
		}
		merged.owners = append(merged.owners, p.owners...)
		for key, entry := range p.entries {
			if _, ok := merged.entries[key]; ok {
				log.Debug("docs: duplicate entry %s ignored", key)
				continue
			}
			merged.entries[key] = entry
		}
	}
	return merged
}

func load(fs afero.Fs, src Source) ([]Entry, error) {
	format, err := FormatFor(src.Path)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fs, src.Path)
	if err != nil {
		return nil, err
	}
	return Parse(format, data)
}

func (p *Provider) add(owner string, entries []Entry) {
	p.owners = append(p.owners, owner)
	for _, e := range entries {
		if _, ok := p.entries[e.Key]; ok {
			log.Debug("docs: duplicate entry %s in %s ignored", e.Key, owner)
			continue
		}
		p.entries[e.Key] = e
	}
}

// Lookup returns the entry for key.
func (p *Provider) Lookup(key Key) (Entry, bool) {
	if p == nil {
		return Entry{}, false
	}
	e, ok := p.entries[key]
	return e, ok
}

// Len reports the number of indexed entries.
func (p *Provider) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Owners lists the modules whose sources were loaded, in load order.
func (p *Provider) Owners() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.owners...)
}
