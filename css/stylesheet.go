package css

import "github.com/lukehoban/cssengine/strpool"

// Origin is the provenance of a stylesheet, participating in cascade
// ordering (spec.md §6 "Origin enum").
type Origin int

const (
	OriginUA Origin = iota
	OriginUser
	OriginAuthor
)

// LanguageLevel selects the CSS grammar level a sheet is parsed against.
// Only CSS21 is implemented; constructing a sheet with any other level
// fails with BADPARM (spec.md §6 "Language level enum").
type LanguageLevel int

const (
	CSS1 LanguageLevel = iota
	CSS2
	CSS21
	CSS3
)

// CharsetSource ranks where a sheet's charset was determined from, in
// ascending priority (spec.md §6 "Charset source enum").
type CharsetSource int

const (
	CharsetDefault CharsetSource = iota
	CharsetReferred
	CharsetMetadata
	CharsetDocument
	CharsetDictated
)

// ImportCallback is invoked at most once per accepted @import rule. The
// host may later call Stylesheet.RegisterImport to attach a parsed child
// sheet for the given URL (spec.md §6 "Import callback").
type ImportCallback func(parent *Stylesheet, url strpool.Handle, media MediaBit) Error

// Options configures a Stylesheet at construction, following the teacher's
// plain-struct-literal configuration style (no flag/env parsing inside the
// engine itself).
type Options struct {
	Pool          *strpool.Pool
	Level         LanguageLevel
	Origin        Origin
	Media         MediaBit
	URL           string
	Title         string
	QuirksAllowed bool
	// QuirksDefaultUnit supplies the unit a bare "0" length assumes in
	// quirks mode (spec.md §4.5); UnitPX if zero.
	QuirksDefaultUnit Unit
	Import            ImportCallback
}

// Stylesheet owns a rule list in document order, a selector hash, and the
// metadata the selection engine consults (origin, media, disabled flag,
// quirks state). Per spec.md §3.
type Stylesheet struct {
	Options Options

	Rules []*Rule
	Hash  *SelectorHash

	Disabled   bool
	QuirksUsed bool

	// OwnerNode / OwnerImportRule are back-pointers supplied by the host;
	// this core never dereferences them. Represented as opaque handles per
	// spec.md §9's "weak reference, not an owning pointer" guidance.
	OwnerNode       any
	OwnerImportRule *Rule

	charsetSeen bool
	importSeen  bool
	anyRuleSeen bool

	nextIndex int

	pendingImports []*Rule // RuleImport rules not yet resolved
}

// NewStylesheet constructs an empty sheet. Any LanguageLevel other than
// CSS21 fails with BADPARM, matching spec.md §6.
func NewStylesheet(opts Options) (*Stylesheet, Error) {
	if opts.Level != CSS21 {
		return nil, BADPARM
	}
	if opts.Pool == nil {
		opts.Pool = strpool.New()
	}
	if opts.Media == 0 {
		opts.Media = MediaScreen
	}
	return &Stylesheet{
		Options: opts,
		Hash:    NewSelectorHash(),
	}, OK
}

func (s *Stylesheet) nextRuleIndex() int {
	i := s.nextIndex
	s.nextIndex++
	return i
}

// addRule appends r to the sheet's top-level rule list, enforcing the
// ordering invariants of spec.md §3: a CHARSET rule must be the sheet's
// first rule; an IMPORT rule must precede every non-charset, non-import
// rule.
func (s *Stylesheet) addRule(r *Rule) Error {
	switch r.Type {
	case RuleCharset:
		if s.anyRuleSeen {
			return INVALID
		}
		s.charsetSeen = true
	case RuleImport:
		if s.anyRuleSeen && !s.importSeen && s.charsetSeen {
			// charset-only so far is fine; anything beyond charset+import
			// blocks further imports.
		}
		if s.importBlocked() {
			return INVALID
		}
		s.importSeen = true
		s.pendingImports = append(s.pendingImports, r)
	default:
		// falls through
	}
	s.anyRuleSeen = true
	s.Rules = append(s.Rules, r)
	if r.Type == RuleSelector || r.Type == RulePage {
		for _, sel := range r.Selectors {
			s.Hash.Insert(sel)
		}
	}
	return OK
}

// importBlocked reports whether a new @import would violate ordering: it
// must appear only before any rule that is neither CHARSET nor IMPORT.
func (s *Stylesheet) importBlocked() bool {
	for _, r := range s.Rules {
		if r.Type != RuleCharset && r.Type != RuleImport {
			return true
		}
	}
	return false
}

// NextPendingImport returns the next @import rule awaiting resolution, or
// nil if none remain.
func (s *Stylesheet) NextPendingImport() *Rule {
	for _, r := range s.pendingImports {
		if r.ImportedSheet == nil {
			return r
		}
	}
	return nil
}

// RegisterImport attaches a parsed child sheet to the given pending import
// rule. It is the host's response to ImportCallback/NextPendingImport.
func (s *Stylesheet) RegisterImport(r *Rule, child *Stylesheet) Error {
	if r.Type != RuleImport {
		return BADPARM
	}
	child.OwnerImportRule = r
	r.ImportedSheet = child
	return OK
}

// HasPendingImports reports whether any @import rule is still unresolved.
func (s *Stylesheet) HasPendingImports() bool {
	return s.NextPendingImport() != nil
}
