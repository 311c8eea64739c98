package css

import "github.com/lukehoban/cssengine/strpool"

// state names the grammar automaton's major states. Naming and the overall
// shape (a stack of {state,substate} pairs driving transitions with no
// native recursion) follow the reference parser's design.
//
// Grounded on _examples/original_source/src/parse/parse.c and
// src/parse/css21.c.
type state uint16

const (
	stStart state = iota
	stStylesheet
	stStatement
	stRuleset
	stRulesetEnd
	stAtRule
	stAtRuleEnd
	stBlock
	stBlockContent
	stSelector
	stDeclaration
	stDeclList
	stDeclListEnd
	stProperty
	stValue0
	stValue1
	stValue
	stAny0
	stAny1
	stAny
	stMalformedDecl
	stMalformedSelector
	stMalformedAtRule
)

// frame is one entry of the automaton's explicit control stack.
type frame struct {
	state    state
	substate uint16
}

// EventType discriminates a structural event delivered to a Handler.
type EventType int

const (
	EvStartStylesheet EventType = iota
	EvEndStylesheet
	EvStartRuleset
	EvEndRuleset
	EvStartAtRule
	EvEndAtRule
	EvStartBlock
	EvEndBlock
	EvBlockContent
	EvDeclaration
)

// Handler consumes the parser's structural events. Returning INVALID from
// HandleEvent transitions the automaton to the appropriate malformed-
// recovery state without aborting the parse (spec.md §4.3).
type Handler interface {
	HandleEvent(ev EventType, tokens []Token) Error
}

// ruleCtx is one nesting level's data context: the tokens accumulated for
// the production currently being recognised, and which kind of block it
// opens (ruleset / at-rule-with-block / none). CSS 2.1's grammar nests at
// most two contexts deep (stylesheet -> @media -> ruleset), so this stack
// never grows large, but it is still a stack rather than a fixed pair of
// fields so the automaton does not assume a nesting bound.
type ruleCtx struct {
	atKeyword string // "" for a plain ruleset
	keywordTok Token // the ATKEYWORD token itself, for case-insensitive name access
	isBlockAtRule bool
	prelude   []Token
	declTokens []Token
	depth     int // bracket nesting depth while inside this context's block
}

// Parser drives the grammar automaton over a Tokenizer's output and
// dispatches structural events to a Handler. It never recurses into the
// native call stack for nested constructs; all nesting is represented on
// frames/ctxStack.
type Parser struct {
	tok     *Tokenizer
	handler Handler

	frames  []frame
	ctx     []*ruleCtx
	pushback *Token

	started bool
	done    bool
}

// NewParser returns a parser reading from tok and delivering events to h.
func NewParser(tok *Tokenizer, h Handler) *Parser {
	return &Parser{tok: tok, handler: h, frames: []frame{{state: stStart}}}
}

func (p *Parser) pushFrame(s state) { p.frames = append(p.frames, frame{state: s}) }
func (p *Parser) popFrame() {
	if len(p.frames) > 0 {
		p.frames = p.frames[:len(p.frames)-1]
	}
}
func (p *Parser) topFrame() state {
	if len(p.frames) == 0 {
		return stStart
	}
	return p.frames[len(p.frames)-1].state
}

// ParseChunk feeds data to the tokenizer and drives the automaton as far as
// it can go, returning NEEDDATA when it must suspend for more input. The
// caller resumes by calling ParseChunk again; all state needed to resume is
// retained on p.
func (p *Parser) ParseChunk(data []byte) Error {
	p.tok.Feed(data)
	if !p.started {
		if err := p.handler.HandleEvent(EvStartStylesheet, nil); err != OK && err != INVALID {
			return err
		}
		p.started = true
	}
	return p.run(false)
}

// Completed signals end of input and drains the automaton, emitting
// EndStylesheet once all pending structure is resolved.
func (p *Parser) Completed() Error {
	if !p.started {
		p.handler.HandleEvent(EvStartStylesheet, nil)
		p.started = true
	}
	if err := p.run(true); err != OK && err != NEEDDATA {
		return err
	}
	if !p.done {
		p.handler.HandleEvent(EvEndStylesheet, nil)
		p.done = true
	}
	return OK
}

// next returns the next token, coalescing whitespace runs into a single
// WHITESPACE token and honouring the one-token pushback buffer.
func (p *Parser) next(atEOF bool) (Token, Error) {
	if p.pushback != nil {
		t := *p.pushback
		p.pushback = nil
		return t, OK
	}
	tk, err := p.tok.Next(atEOF)
	if err != OK {
		return Token{}, err
	}
	if tk.Type == WHITESPACE {
		for {
			peek, err := p.tok.Next(atEOF)
			if err != OK {
				// Need more data to know whether whitespace continues;
				// remember the whitespace token via pushback so we don't
				// lose it, and surface NEEDDATA upward.
				p.pushback = &tk
				return Token{}, err
			}
			if peek.Type != WHITESPACE {
				p.pushback = &peek
				break
			}
		}
	}
	return tk, OK
}

func (p *Parser) pushBack(t Token) { p.pushback = &t }

// run executes the automaton loop until it blocks on NEEDDATA (atEOF
// false) or exhausts input (atEOF true).
func (p *Parser) run(atEOF bool) Error {
	for {
		switch p.topFrame() {
		case stStart, stStylesheet, stStatement:
			if err := p.stepTop(atEOF); err != OK {
				return err
			}
		default:
			if err := p.stepNested(atEOF); err != OK {
				return err
			}
		}
		if len(p.frames) == 1 && p.frames[0].state == stStart && atEOF {
			return OK
		}
	}
}

// stepTop handles the top-level stylesheet loop: skip CDO/CDC/whitespace,
// dispatch a statement as either an at-rule or a ruleset prelude.
func (p *Parser) stepTop(atEOF bool) Error {
	tk, err := p.next(atEOF)
	if err != OK {
		return err
	}
	switch tk.Type {
	case TokenEOF:
		return OK
	case CDO, CDC, WHITESPACE, COMMENT:
		return OK
	case ATKEYWORD:
		c := &ruleCtx{atKeyword: lowerTokenText(tk), keywordTok: tk}
		p.ctx = append(p.ctx, c)
		p.pushFrame(stAtRule)
		return OK
	default:
		c := &ruleCtx{}
		p.ctx = append(p.ctx, c)
		p.pushFrame(stSelector)
		p.pushBack(tk)
		return OK
	}
}

// atRuleTokens prepends the ATKEYWORD token to an at-rule's accumulated
// prelude so the handler can recover the rule name from tokens[0] without
// a separate event parameter.
func (p *Parser) atRuleTokens(cur *ruleCtx) []Token {
	return append([]Token{cur.keywordTok}, cur.prelude...)
}

// lowerTokenText returns t's case-folded text, used for the CSS-
// case-insensitive at-keyword names (media, charset, import, page,
// font-face).
func lowerTokenText(t Token) string {
	if t.Lower.Valid() {
		return strpool.Data(t.Lower)
	}
	return t.Text
}

// stepNested advances whichever nested production is active: collecting an
// at-rule prelude, a selector prelude, or the content of an open block.
func (p *Parser) stepNested(atEOF bool) Error {
	top := p.topFrame()
	cur := p.curCtx()
	switch top {
	case stAtRule:
		return p.stepAtRulePrelude(cur, atEOF)
	case stSelector:
		return p.stepSelectorPrelude(cur, atEOF)
	case stBlock, stBlockContent:
		return p.stepBlockContent(cur, atEOF)
	case stMalformedDecl, stMalformedSelector, stMalformedAtRule:
		return p.stepMalformed(cur, top, atEOF)
	default:
		p.popFrame()
		return OK
	}
}

func (p *Parser) curCtx() *ruleCtx {
	if len(p.ctx) == 0 {
		return nil
	}
	return p.ctx[len(p.ctx)-1]
}

func (p *Parser) popCtx() *ruleCtx {
	n := len(p.ctx)
	c := p.ctx[n-1]
	p.ctx = p.ctx[:n-1]
	return c
}

// stepAtRulePrelude accumulates tokens of an at-rule's prelude until ';'
// (simple at-rule) or '{' (block at-rule), then emits StartAtRule.
func (p *Parser) stepAtRulePrelude(cur *ruleCtx, atEOF bool) Error {
	tk, err := p.next(atEOF)
	if err != OK {
		return err
	}
	switch {
	case tk.Type == CHAR && tk.Text == ";":
		err := p.handler.HandleEvent(EvStartAtRule, p.atRuleTokens(cur))
		if err == INVALID {
			p.popFrame()
			p.popCtx()
			return OK
		}
		p.handler.HandleEvent(EvEndAtRule, nil)
		p.popFrame()
		p.popCtx()
		return OK
	case tk.Type == CHAR && tk.Text == "{":
		cur.isBlockAtRule = true
		err := p.handler.HandleEvent(EvStartAtRule, p.atRuleTokens(cur))
		if err == INVALID {
			cur.depth = 1
			p.frames[len(p.frames)-1] = frame{state: stMalformedAtRule}
			return OK
		}
		p.handler.HandleEvent(EvStartBlock, nil)
		p.frames[len(p.frames)-1] = frame{state: stBlockContent}
		cur.depth = 1
		return OK
	case tk.Type == TokenEOF:
		// Unterminated at-rule at EOF: discard, matching the "never crash"
		// boundary behaviour for incomplete trailing constructs.
		p.popFrame()
		p.popCtx()
		return OK
	default:
		cur.prelude = append(cur.prelude, tk)
		return OK
	}
}

// stepSelectorPrelude accumulates a ruleset's selector-list tokens until
// the opening '{'.
func (p *Parser) stepSelectorPrelude(cur *ruleCtx, atEOF bool) Error {
	tk, err := p.next(atEOF)
	if err != OK {
		return err
	}
	switch {
	case tk.Type == CHAR && tk.Text == "{":
		err := p.handler.HandleEvent(EvStartRuleset, cur.prelude)
		if err == INVALID {
			cur.depth = 1
			p.frames[len(p.frames)-1] = frame{state: stMalformedSelector}
			return OK
		}
		p.handler.HandleEvent(EvStartBlock, nil)
		p.frames[len(p.frames)-1] = frame{state: stBlockContent}
		cur.depth = 1
		return OK
	case tk.Type == TokenEOF:
		p.popFrame()
		p.popCtx()
		return OK
	default:
		cur.prelude = append(cur.prelude, tk)
		return OK
	}
}

// stepBlockContent consumes one top-level declaration (for a ruleset /
// @font-face / @page) or one nested ruleset (for @media), tracking bracket
// depth so declarations containing "(" ... ")" are not split early, and
// closing the block on the matching '}'.
func (p *Parser) stepBlockContent(cur *ruleCtx, atEOF bool) Error {
	tk, err := p.next(atEOF)
	if err != OK {
		return err
	}

	if cur.atKeyword == "media" {
		return p.stepMediaBlockContent(cur, tk, atEOF)
	}

	switch {
	case tk.Type == CHAR && tk.Text == "}" :
		if len(cur.declTokens) > 0 {
			p.emitDeclaration(cur)
		}
		p.endBlock(cur)
		return OK
	case tk.Type == CHAR && tk.Text == ";":
		p.emitDeclaration(cur)
		return OK
	case tk.Type == TokenEOF:
		if len(cur.declTokens) > 0 {
			p.emitDeclaration(cur)
		}
		p.endBlock(cur)
		return OK
	default:
		cur.declTokens = append(cur.declTokens, tk)
		return OK
	}
}

// stepMediaBlockContent collects nested ruleset preludes/blocks inside an
// @media rule by pushing a fresh selector-prelude context, mirroring the
// top-level dispatch one nesting level in.
func (p *Parser) stepMediaBlockContent(cur *ruleCtx, tk Token, atEOF bool) Error {
	switch {
	case tk.Type == CHAR && tk.Text == "}":
		p.endBlock(cur)
		return OK
	case tk.Type == WHITESPACE, tk.Type == COMMENT:
		return OK
	case tk.Type == TokenEOF:
		p.endBlock(cur)
		return OK
	default:
		nested := &ruleCtx{}
		p.ctx = append(p.ctx, nested)
		p.pushFrame(stSelector)
		p.pushBack(tk)
		return OK
	}
}

func (p *Parser) emitDeclaration(cur *ruleCtx) {
	toks := cur.declTokens
	cur.declTokens = nil
	if len(toks) == 0 {
		return
	}
	if err := p.handler.HandleEvent(EvDeclaration, toks); err == INVALID {
		// discarded; malformed declarations never abort the block.
	}
}

func (p *Parser) endBlock(cur *ruleCtx) {
	p.handler.HandleEvent(EvBlockContent, nil)
	p.handler.HandleEvent(EvEndBlock, nil)
	if cur.isBlockAtRule {
		p.handler.HandleEvent(EvEndAtRule, nil)
	} else {
		p.handler.HandleEvent(EvEndRuleset, nil)
	}
	p.popFrame()
	p.popCtx()
}

// stepMalformed discards tokens for error recovery: a malformed
// declaration is consumed up to the next ';' or '}' at the current depth;
// a malformed selector consumes the next balanced "{ ... }"; a malformed
// at-rule consumes to the next ';' or balanced block at current depth.
func (p *Parser) stepMalformed(cur *ruleCtx, which state, atEOF bool) Error {
	tk, err := p.next(atEOF)
	if err != OK {
		return err
	}
	switch tk.Type {
	case CHAR:
		switch tk.Text {
		case "{", "(", "[":
			cur.depth++
		case "}":
			cur.depth--
			if cur.depth <= 0 {
				p.popFrame()
				p.popCtx()
			}
		case ")", "]":
			if cur.depth > 1 {
				cur.depth--
			}
		case ";":
			if which != stMalformedSelector && cur.depth <= 1 {
				p.popFrame()
				p.popCtx()
			}
		}
	case TokenEOF:
		p.popFrame()
		p.popCtx()
	}
	return OK
}
