package nlp

// Universal POS tags, in the order used for first_word_type ids and for the
// composition columns.
const (
	TagADJ   = "ADJ"
	TagADP   = "ADP"
	TagADV   = "ADV"
	TagAUX   = "AUX"
	TagCONJ  = "CONJ"
	TagCCONJ = "CCONJ"
	TagDET   = "DET"
	TagINTJ  = "INTJ"
	TagNOUN  = "NOUN"
	TagNUM   = "NUM"
	TagPART  = "PART"
	TagPRON  = "PRON"
	TagPROPN = "PROPN"
	TagPUNCT = "PUNCT"
	TagSCONJ = "SCONJ"
	TagSYM   = "SYM"
	TagVERB  = "VERB"
	TagX     = "X"
	TagSPACE = "SPACE"
)

var posTags = [...]string{
	TagADJ, TagADP, TagADV, TagAUX, TagCONJ, TagCCONJ, TagDET, TagINTJ,
	TagNOUN, TagNUM, TagPART, TagPRON, TagPROPN, TagPUNCT, TagSCONJ,
	TagSYM, TagVERB, TagX, TagSPACE,
}

// POSTags returns a copy of the 19 tags in their fixed order.
func POSTags() []string {
	out := make([]string, len(posTags))
	copy(out, posTags[:])
	return out
}

// POSIndex returns the position of tag in POSTags, or -1.
func POSIndex(tag string) int {
	for i, t := range posTags {
		if t == tag {
			return i
		}
	}
	return -1
}

// IsPOSTag reports whether tag belongs to the fixed tag list.
func IsPOSTag(tag string) bool {
	return POSIndex(tag) >= 0
}
