package model

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"spamlens/internal/domain"
)

const (
	analyzerWord   = "word"
	analyzerChar   = "char"
	analyzerCharWB = "char_wb"

	normL1   = "l1"
	normL2   = "l2"
	normNone = ""

	stripAccentsUnicode = "unicode"

	defaultTokenPattern = `[\p{L}\p{N}_]{2,}`
)

var whiteSpaces = regexp.MustCompile(`\s\s+`)

// vectorizerFile is the on-disk form of a fitted text vectorizer.
type vectorizerFile struct {
	Version      string         `json:"version"`
	Analyzer     string         `json:"analyzer"`
	Lowercase    *bool          `json:"lowercase"`
	StripAccents string         `json:"strip_accents"`
	TokenPattern string         `json:"token_pattern"`
	NgramRange   [2]int         `json:"ngram_range"`
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	SublinearTF  bool           `json:"sublinear_tf"`
	Binary       bool           `json:"binary"`
	Norm         string         `json:"norm"`
}

// Vectorizer maps text onto a fixed vocabulary as term counts, optionally
// reweighted by inverse document frequency and normalized.
type Vectorizer struct {
	version      string
	analyzer     string
	lowercase    bool
	stripAccents bool
	token        *regexp.Regexp
	minN, maxN   int
	vocab        map[string]int
	idf          []float64
	sublinear    bool
	binary       bool
	norm         string
}

// ParseVectorizer decodes and validates a vectorizer artifact.
func ParseVectorizer(data []byte) (*Vectorizer, error) {
	var f vectorizerFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding vectorizer: %w", err)
	}

	v := &Vectorizer{
		version:   f.Version,
		analyzer:  f.Analyzer,
		lowercase: true,
		vocab:     f.Vocabulary,
		idf:       f.IDF,
		sublinear: f.SublinearTF,
		binary:    f.Binary,
		norm:      strings.ToLower(f.Norm),
		minN:      f.NgramRange[0],
		maxN:      f.NgramRange[1],
	}
	if f.Lowercase != nil {
		v.lowercase = *f.Lowercase
	}
	if v.analyzer == "" {
		v.analyzer = analyzerWord
	}
	if v.minN == 0 && v.maxN == 0 {
		v.minN, v.maxN = 1, 1
	}

	switch v.analyzer {
	case analyzerWord, analyzerChar, analyzerCharWB:
	default:
		return nil, fmt.Errorf("unsupported analyzer %q", f.Analyzer)
	}
	switch f.StripAccents {
	case "":
	case stripAccentsUnicode:
		v.stripAccents = true
	default:
		return nil, fmt.Errorf("unsupported strip_accents %q", f.StripAccents)
	}
	switch v.norm {
	case normL1, normL2, normNone:
	default:
		return nil, fmt.Errorf("unsupported norm %q", f.Norm)
	}
	if v.minN < 1 || v.maxN < v.minN {
		return nil, fmt.Errorf("invalid ngram_range [%d, %d]", v.minN, v.maxN)
	}

	pattern := f.TokenPattern
	if pattern == "" {
		pattern = defaultTokenPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling token_pattern: %w", err)
	}
	v.token = re

	if len(v.vocab) == 0 {
		return nil, fmt.Errorf("vectorizer vocabulary is empty")
	}
	seen := make([]bool, len(v.vocab))
	for term, idx := range v.vocab {
		if idx < 0 || idx >= len(v.vocab) || seen[idx] {
			return nil, fmt.Errorf("vocabulary index %d for %q is out of range or duplicated", idx, term)
		}
		seen[idx] = true
	}
	if v.idf != nil && len(v.idf) != len(v.vocab) {
		return nil, fmt.Errorf("idf has %d weights, vocabulary has %d terms", len(v.idf), len(v.vocab))
	}

	return v, nil
}

// Version returns the fitted artifact version.
func (v *Vectorizer) Version() string { return v.version }

// Dim returns the feature dimension.
func (v *Vectorizer) Dim() int { return len(v.vocab) }

// Transform maps text to a feature vector. It is total: empty or fully
// out-of-vocabulary text yields a vector with no non-zero entries.
func (v *Vectorizer) Transform(text string) domain.FeatureVector {
	counts := make(map[int]float64)
	for _, term := range v.analyze(text) {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
		}
	}

	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	for i, idx := range indices {
		tf := counts[idx]
		switch {
		case v.binary:
			tf = 1
		case v.sublinear:
			tf = 1 + math.Log(tf)
		}
		if v.idf != nil {
			tf *= v.idf[idx]
		}
		values[i] = tf
	}
	normalize(values, v.norm)

	return domain.FeatureVector{Dim: v.Dim(), Indices: indices, Values: values}
}

func (v *Vectorizer) analyze(text string) []string {
	doc := v.preprocess(text)
	switch v.analyzer {
	case analyzerChar:
		return charNgrams(doc, v.minN, v.maxN)
	case analyzerCharWB:
		return charWBNgrams(doc, v.minN, v.maxN)
	default:
		return wordNgrams(v.token.FindAllString(doc, -1), v.minN, v.maxN)
	}
}

func (v *Vectorizer) preprocess(text string) string {
	if v.lowercase {
		text = strings.ToLower(text)
	}
	if v.stripAccents {
		t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
		if out, _, err := transform.String(t, text); err == nil {
			text = out
		}
	}
	return text
}

func wordNgrams(tokens []string, minN, maxN int) []string {
	if maxN == 1 {
		return tokens
	}
	var out []string
	if minN == 1 {
		out = append(out, tokens...)
		minN++
	}
	for n := minN; n <= maxN && n <= len(tokens); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

func charNgrams(text string, minN, maxN int) []string {
	r := []rune(whiteSpaces.ReplaceAllString(text, " "))
	var out []string
	if minN == 1 {
		for _, c := range r {
			out = append(out, string(c))
		}
		minN++
	}
	for n := minN; n <= maxN && n <= len(r); n++ {
		for i := 0; i+n <= len(r); i++ {
			out = append(out, string(r[i:i+n]))
		}
	}
	return out
}

// charWBNgrams builds character n-grams only from text inside word
// boundaries, padding each word with a space on both sides.
func charWBNgrams(text string, minN, maxN int) []string {
	var out []string
	for _, w := range strings.Fields(whiteSpaces.ReplaceAllString(text, " ")) {
		wr := []rune(" " + w + " ")
		for n := minN; n <= maxN; n++ {
			offset := 0
			out = append(out, string(wr[offset:min(offset+n, len(wr))]))
			for offset+n < len(wr) {
				offset++
				out = append(out, string(wr[offset:offset+n]))
			}
			// a word shorter than n is counted once
			if offset == 0 {
				break
			}
		}
	}
	return out
}

func normalize(values []float64, kind string) {
	var total float64
	switch kind {
	case normL2:
		for _, x := range values {
			total += x * x
		}
		total = math.Sqrt(total)
	case normL1:
		for _, x := range values {
			total += math.Abs(x)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}
