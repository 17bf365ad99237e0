package store

import "github.com/theirongolddev/vowbudget/internal/progress"

// ProgressPersister stores the progression record as a document.
type ProgressPersister struct {
	DB *DB
}

func (p ProgressPersister) Load() (progress.State, bool, error) {
	var st progress.State
	ok, err := p.DB.GetDocument(progress.StorageKey, &st)
	return st, ok, err
}

func (p ProgressPersister) Save(st progress.State) error {
	return p.DB.PutDocument(progress.StorageKey, st)
}

func (p ProgressPersister) Clear() error {
	return p.DB.DeleteDocument(progress.StorageKey)
}
