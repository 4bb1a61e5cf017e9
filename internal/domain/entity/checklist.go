package entity

// ProcedureChecklist is an operational procedure with ordered checklist items.
type ProcedureChecklist struct {
	Meta            `bson:",inline"`
	ChecklistFields `bson:",inline"`
}

// ChecklistFields are the domain fields supplied by callers on create/update.
// No bson omitempty: updates replace the whole block, so cleared fields must
// still marshal.
type ChecklistFields struct {
	Title       string          `bson:"title" json:"title"`
	Number      string          `bson:"number" json:"number"`
	Description string          `bson:"description" json:"description"`
	Items       []ChecklistItem `bson:"items" json:"items"`
	ImageURL    string          `bson:"imageUrl" json:"imageUrl,omitempty"`
}

// ChecklistItem is a single step within a procedure checklist.
type ChecklistItem struct {
	Number   int    `bson:"number" json:"number"`
	Topic    string `bson:"topic" json:"topic"`
	Content  string `bson:"content" json:"content"`
	ImageURL string `bson:"imageUrl" json:"imageUrl,omitempty"`
}
