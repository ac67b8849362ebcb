package scoring

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern keeps runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vector is a sparse, L2-normalised TF-IDF row.
type Vector map[string]float64

// Tokenize lower-cases text and splits it into terms.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Vectorize builds one TF-IDF vector per document using raw term counts and
// smoothed inverse document frequency, ln((1+n)/(1+df)) + 1.
// Documents without any term come back as empty vectors.
func Vectorize(docs []string) []Vector {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		tf := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			tf[tok]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, d := range df {
		idf[term] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([]Vector, len(docs))
	for i, tf := range counts {
		v := make(Vector, len(tf))
		var sq float64
		for term, c := range tf {
			w := float64(c) * idf[term]
			v[term] = w
			sq += w * w
		}
		if sq > 0 {
			norm := math.Sqrt(sq)
			for term := range v {
				v[term] /= norm
			}
		}
		vectors[i] = v
	}
	return vectors
}

// Norm is the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sq float64
	for _, w := range v {
		sq += w * w
	}
	return math.Sqrt(sq)
}

// Cosine returns the cosine similarity of a and b, 0 when either is empty.
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	var dot float64
	for term, w := range a {
		dot += w * b[term]
	}
	return dot / (na * nb)
}
