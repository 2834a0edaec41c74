package html

import (
	"strings"
	"sync"
)

// Tag is a symbolic identifier for a known markup tag. Several identifiers
// may share one raw spelling (TagA and TagAnchor both resolve to "a"); every
// identifier resolves to exactly one raw name and one classification.
type Tag int

const (
	// TagUnknown is the sentinel for raw names the catalog does not know.
	// Callers keep the original spelling verbatim alongside it.
	TagUnknown Tag = iota
	// TagEmpty is the transparent wrapper: a section carrying it suppresses
	// its own open/close tags on render.
	TagEmpty
	// TagEmptyNoFormat is the pass-through pseudo-tag: its payload is
	// emitted verbatim, immune to formatting.
	TagEmptyNoFormat

	TagAbbreviation
	TagAbbr
	TagAcronym
	TagAddress
	TagAnchor
	TagA
	TagApplet
	TagArticle
	TagArea
	TagAside
	TagAudio
	TagBase
	TagBasefont
	TagBdi
	TagBdo
	TagBgsound
	TagBig
	TagBlockquote
	TagBody
	TagBold
	TagB
	TagBr
	TagBreak
	TagButton
	TagCaption
	TagCanvas
	TagCenter
	TagCite
	TagCode
	TagColgroup
	TagCol
	TagColumn
	TagData
	TagDatalist
	TagDd
	TagDfn
	TagDefine
	TagDelete
	TagDel
	TagDetails
	TagDialog
	TagDir
	TagDiv
	TagDl
	TagDt
	TagUl
	TagUnorderedList
	TagOl
	TagOrderedList
	TagEmbed
	TagEm
	TagEmphasis
	TagFieldset
	TagFigcaption
	TagFigure
	TagFont
	TagFooter
	TagForm
	TagFrame
	TagFrameset
	TagHead
	TagHeader
	TagH1
	TagH2
	TagH3
	TagH4
	TagH5
	TagH6
	TagHgroup
	TagHr
	TagHtml
	TagIframe
	TagImage
	TagImg
	TagInput
	TagIns
	TagIsindex
	TagItalic
	TagI
	TagKbd
	TagKeygen
	TagLabel
	TagLegend
	TagList
	TagLi
	TagLink
	TagMain
	TagMark
	TagMarquee
	TagMenuitem
	TagMeta
	TagMeter
	TagNav
	TagNobreak
	TagNobr
	TagNoembed
	TagNoscript
	TagObject
	TagOptgroup
	TagOption
	TagOutput
	TagParagraph
	TagP
	TagParam
	TagPhrase
	TagPre
	TagProgress
	TagQuote
	TagQ
	TagRp
	TagRt
	TagRuby
	TagOutdated
	TagS
	TagSample
	TagSamp
	TagScript
	TagSection
	TagSmall
	TagSource
	TagSpacer
	TagSpan
	TagStrike
	TagStrong
	TagStyle
	TagSelect
	TagSub
	TagSubscript
	TagSup
	TagSuperscript
	TagSummary
	TagSvg
	TagTable
	TagTbody
	TagTd
	TagTemplate
	TagTfoot
	TagTh
	TagThead
	TagTime
	TagTitle
	TagTr
	TagTrack
	TagTt
	TagUnderline
	TagU
	TagVar
	TagVideo
	TagWbr
	TagXmp
)

type tagEntry struct {
	name string
	typ  Type
}

type tagCatalog struct {
	byTag  map[Tag]tagEntry
	byName map[string]Tag
}

var (
	catalogOnce sync.Once
	catalogData *tagCatalog
)

// catalog returns the process-wide tag catalog. Built once, never mutated
// afterwards; all access goes through pure lookups.
func catalog() *tagCatalog {
	catalogOnce.Do(func() {
		byTag := map[Tag]tagEntry{
			TagEmpty:         {"", TypeContainer},
			TagEmptyNoFormat: {"", TypeNoFormat},
			TagAbbreviation:  {"abbr", TypeContainer},
			TagAbbr:          {"abbr", TypeContainer},
			TagAcronym:       {"acronym", TypeContainer},
			TagAddress:       {"address", TypeContainer},
			TagAnchor:        {"a", TypeContainer},
			TagA:             {"a", TypeContainer},
			TagApplet:        {"applet", TypeContainer},
			TagArticle:       {"article", TypeContainer},
			TagArea:          {"area", TypeContainer},
			TagAside:         {"aside", TypeContainer},
			TagAudio:         {"audio", TypeContainer},
			TagBase:          {"base", TypeContainer},
			TagBasefont:      {"basefont", TypeContainer},
			TagBdi:           {"bdi", TypeContainer},
			TagBdo:           {"bdo", TypeContainer},
			TagBgsound:       {"bgsound", TypeContainer},
			TagBig:           {"big", TypeContainer},
			TagBlockquote:    {"blockquote", TypeContainer},
			TagBody:          {"body", TypeContainer},
			TagBold:          {"b", TypeContainer},
			TagB:             {"b", TypeContainer},
			TagBr:            {"br", TypeVoid},
			TagBreak:         {"br", TypeVoid},
			TagButton:        {"button", TypeContainer},
			TagCaption:       {"caption", TypeContainer},
			TagCanvas:        {"canvas", TypeContainer},
			TagCenter:        {"center", TypeContainer},
			TagCite:          {"cite", TypeContainer},
			TagCode:          {"code", TypeContainer},
			TagColgroup:      {"colgroup", TypeContainer},
			TagCol:           {"col", TypeContainer},
			TagColumn:        {"col", TypeContainer},
			TagData:          {"data", TypeContainer},
			TagDatalist:      {"datalist", TypeContainer},
			TagDd:            {"dd", TypeContainer},
			TagDfn:           {"dfn", TypeContainer},
			TagDefine:        {"dfn", TypeContainer},
			TagDelete:        {"del", TypeContainer},
			TagDel:           {"del", TypeContainer},
			TagDetails:       {"details", TypeContainer},
			TagDialog:        {"dialog", TypeContainer},
			TagDir:           {"dir", TypeContainer},
			TagDiv:           {"div", TypeContainer},
			TagDl:            {"dl", TypeContainer},
			TagDt:            {"dt", TypeContainer},
			TagUl:            {"ul", TypeContainer},
			TagUnorderedList: {"ul", TypeContainer},
			TagOl:            {"ol", TypeContainer},
			TagOrderedList:   {"ol", TypeContainer},
			TagEmbed:         {"embed", TypeContainer},
			TagEm:            {"em", TypeContainer},
			TagEmphasis:      {"em", TypeContainer},
			TagFieldset:      {"fieldset", TypeContainer},
			TagFigcaption:    {"figcaption", TypeContainer},
			TagFigure:        {"figure", TypeContainer},
			TagFont:          {"font", TypeContainer},
			TagFooter:        {"footer", TypeContainer},
			TagForm:          {"form", TypeContainer},
			TagFrame:         {"frame", TypeContainer},
			TagFrameset:      {"frameset", TypeContainer},
			TagHead:          {"head", TypeContainer},
			TagHeader:        {"header", TypeContainer},
			TagH1:            {"h1", TypeContainer},
			TagH2:            {"h2", TypeContainer},
			TagH3:            {"h3", TypeContainer},
			TagH4:            {"h4", TypeContainer},
			TagH5:            {"h5", TypeContainer},
			TagH6:            {"h6", TypeContainer},
			TagHgroup:        {"hgroup", TypeContainer},
			TagHr:            {"hr", TypeVoid},
			TagHtml:          {"html", TypeContainer},
			TagIframe:        {"iframe", TypeContainer},
			TagImage:         {"img", TypeVoid},
			TagImg:           {"img", TypeVoid},
			TagInput:         {"input", TypeVoid},
			TagIns:           {"ins", TypeContainer},
			TagIsindex:       {"isindex", TypeContainer},
			TagItalic:        {"i", TypeContainer},
			TagI:             {"i", TypeContainer},
			TagKbd:           {"kbd", TypeContainer},
			TagKeygen:        {"keygen", TypeContainer},
			TagLabel:         {"label", TypeContainer},
			TagLegend:        {"legend", TypeContainer},
			TagList:          {"li", TypeContainer},
			TagLi:            {"li", TypeContainer},
			TagLink:          {"link", TypeContainer},
			TagMain:          {"main", TypeContainer},
			TagMark:          {"mark", TypeContainer},
			TagMarquee:       {"marquee", TypeContainer},
			TagMenuitem:      {"menuitem", TypeContainer},
			TagMeta:          {"meta", TypeContainer},
			TagMeter:         {"meter", TypeContainer},
			TagNav:           {"nav", TypeContainer},
			TagNobreak:       {"nobr", TypeContainer},
			TagNobr:          {"nobr", TypeContainer},
			TagNoembed:       {"noembed", TypeContainer},
			TagNoscript:      {"noscript", TypeContainer},
			TagObject:        {"object", TypeContainer},
			TagOptgroup:      {"optgroup", TypeContainer},
			TagOption:        {"option", TypeContainer},
			TagOutput:        {"output", TypeContainer},
			TagParagraph:     {"p", TypeContainer},
			TagP:             {"p", TypeContainer},
			TagParam:         {"param", TypeContainer},
			TagPhrase:        {"phrase", TypeContainer},
			TagPre:           {"pre", TypeContainer},
			TagProgress:      {"progress", TypeContainer},
			TagQuote:         {"q", TypeContainer},
			TagQ:             {"q", TypeContainer},
			TagRp:            {"rp", TypeContainer},
			TagRt:            {"rt", TypeContainer},
			TagRuby:          {"ruby", TypeContainer},
			TagOutdated:      {"s", TypeContainer},
			TagS:             {"s", TypeContainer},
			TagSample:        {"samp", TypeContainer},
			TagSamp:          {"samp", TypeContainer},
			TagScript:        {"script", TypeContainer},
			TagSection:       {"section", TypeContainer},
			TagSmall:         {"small", TypeContainer},
			TagSource:        {"source", TypeContainer},
			TagSpacer:        {"spacer", TypeContainer},
			TagSpan:          {"span", TypeContainer},
			TagStrike:        {"strike", TypeContainer},
			TagStrong:        {"strong", TypeContainer},
			TagStyle:         {"style", TypeContainer},
			TagSelect:        {"select", TypeContainer},
			TagSub:           {"sub", TypeContainer},
			TagSubscript:     {"sub", TypeContainer},
			TagSup:           {"sup", TypeContainer},
			TagSuperscript:   {"sup", TypeContainer},
			TagSummary:       {"summary", TypeContainer},
			TagSvg:           {"svg", TypeContainer},
			TagTable:         {"table", TypeContainer},
			TagTbody:         {"tbody", TypeContainer},
			TagTd:            {"td", TypeContainer},
			TagTemplate:      {"template", TypeContainer},
			TagTfoot:         {"tfoot", TypeContainer},
			TagTh:            {"th", TypeContainer},
			TagThead:         {"thead", TypeContainer},
			TagTime:          {"time", TypeContainer},
			TagTitle:         {"title", TypeContainer},
			TagTr:            {"tr", TypeContainer},
			TagTrack:         {"track", TypeContainer},
			TagTt:            {"tt", TypeContainer},
			TagUnderline:     {"u", TypeContainer},
			TagU:             {"u", TypeContainer},
			TagVar:           {"var", TypeContainer},
			TagVideo:         {"video", TypeContainer},
			TagWbr:           {"wbr", TypeContainer},
			TagXmp:           {"xmp", TypeContainer},
		}

		// First declared identifier wins the reverse mapping, so aliases
		// sharing one raw name resolve back deterministically.
		byName := make(map[string]Tag, len(byTag))
		for tag := TagEmpty; tag <= TagXmp; tag++ {
			e, ok := byTag[tag]
			if !ok || e.name == "" {
				continue
			}
			if _, exists := byName[e.name]; !exists {
				byName[e.name] = tag
			}
		}

		catalogData = &tagCatalog{byTag: byTag, byName: byName}
	})
	return catalogData
}

// Resolve returns the canonical raw spelling and the classification of a
// tag. Unknown identifiers resolve to an empty name with container
// classification.
func Resolve(tag Tag) (string, Type) {
	if e, ok := catalog().byTag[tag]; ok {
		return e.name, e.typ
	}
	return "", TypeContainer
}

// ResolveName resolves a raw spelling to its tag identifier, matching
// case-insensitively against every known alias. Unknown spellings resolve to
// TagUnknown; the caller keeps the original name verbatim.
func ResolveName(name string) Tag {
	if tag, ok := catalog().byName[strings.ToLower(name)]; ok {
		return tag
	}
	return TagUnknown
}

// TypeOfName returns the classification recorded for a raw spelling.
// Unknown spellings classify as containers so round-tripping keeps their
// wrapper pair.
func TypeOfName(name string) Type {
	tag := ResolveName(name)
	if tag == TagUnknown {
		return TypeContainer
	}
	_, typ := Resolve(tag)
	return typ
}

// structuralTags names tags that form sections during tree reconstruction:
// tags that structurally hold other nodes rather than carrying inline text.
var structuralTags = map[string]struct{}{
	"html": {}, "head": {}, "body": {}, "div": {}, "section": {},
	"article": {}, "aside": {}, "nav": {}, "header": {}, "footer": {},
	"main": {}, "hgroup": {}, "ul": {}, "ol": {}, "dl": {}, "table": {},
	"thead": {}, "tbody": {}, "tfoot": {}, "tr": {}, "colgroup": {},
	"form": {}, "fieldset": {}, "select": {}, "optgroup": {},
	"details": {}, "dialog": {}, "figure": {}, "blockquote": {},
	"frameset": {}, "template": {},
}

// IsContainer reports whether a raw tag spelling is structurally a container
// for tree reconstruction purposes. This is narrower than TypeContainer:
// most inline tags keep their wrapper pair on render but hold text, not
// subtrees.
func IsContainer(name string) bool {
	_, ok := structuralTags[strings.ToLower(name)]
	return ok
}

// IsContainerTag is IsContainer for a symbolic tag identifier.
func IsContainerTag(tag Tag) bool {
	name, _ := Resolve(tag)
	return IsContainer(name)
}
