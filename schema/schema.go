package schema

// Annotation is attached to a record declaration to hand extra metadata
// to consumers of the resolved schema, such as the code generator.
// Annotations are grouped by name; see Merge.
type Annotation interface {
	// Name returns the name the annotation is registered under.
	Name() string
}

// Merger is implemented by annotations that can fold a later annotation
// with the same name into themselves instead of being replaced by it.
type Merger interface {
	Merge(Annotation) Annotation
}

// CommentAnnotation carries a free-form comment. The code generator
// emits it as the doc comment of the artifacts generated for the record.
type CommentAnnotation struct {
	Text string `json:"text,omitempty"`
}

// Name implements the Annotation interface.
func (CommentAnnotation) Name() string {
	return "Comment"
}

// Comment returns a comment annotation with the given text.
func Comment(text string) *CommentAnnotation {
	return &CommentAnnotation{Text: text}
}

// Merge folds a list of annotations into one annotation per name. When
// two annotations share a name, the earlier one absorbs the later
// through the Merger interface if it implements it; otherwise the later
// replaces the earlier.
func Merge(anns []Annotation) map[string]Annotation {
	merged := make(map[string]Annotation, len(anns))
	for _, ann := range anns {
		name := ann.Name()
		if prev, ok := merged[name]; ok {
			if m, ok := prev.(Merger); ok {
				merged[name] = m.Merge(ann)
				continue
			}
		}
		merged[name] = ann
	}
	return merged
}

// CommentOf extracts the comment text from a list of annotations,
// folding duplicates. The second return is false when no comment
// annotation is present.
func CommentOf(anns []Annotation) (string, bool) {
	switch c := Merge(anns)["Comment"].(type) {
	case *CommentAnnotation:
		return c.Text, true
	case CommentAnnotation:
		return c.Text, true
	default:
		return "", false
	}
}
