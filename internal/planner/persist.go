package planner

// Documents is a keyed JSON document store. *store.DB satisfies it.
type Documents interface {
	GetDocument(key string, v any) (bool, error)
	PutDocument(key string, v any) error
	DeleteDocument(key string) error
}

// DocumentPersister keeps the plan as a document under StorageKey.
type DocumentPersister struct {
	Docs Documents
}

func (p DocumentPersister) LoadPlan() (*Plan, bool, error) {
	var plan Plan
	ok, err := p.Docs.GetDocument(StorageKey, &plan)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &plan, true, nil
}

func (p DocumentPersister) SavePlan(plan *Plan) error {
	return p.Docs.PutDocument(StorageKey, plan)
}

// ClearPlan removes the stored plan.
func (p DocumentPersister) ClearPlan() error {
	return p.Docs.DeleteDocument(StorageKey)
}
