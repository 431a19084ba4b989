package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
)

type firestoreJobRepository struct {
	client *firestore.Client
}

func NewFirestoreJobRepository(client *firestore.Client) repository.JobRepository {
	return &firestoreJobRepository{
		client: client,
	}
}

func (r *firestoreJobRepository) Create(ctx context.Context, job *entity.Job) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	return createDoc(ctx, docRef(r.client, jobsCollection, job.ID), job)
}

func (r *firestoreJobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	doc, err := getDoc(ctx, docRef(r.client, jobsCollection, id))
	if err != nil {
		return nil, readErr(err, "Job")
	}
	return decode[entity.Job](doc)
}

func (r *firestoreJobRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Job, error) {
	ids = uniqueIDs(ids)
	refs := make([]*firestore.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = docRef(r.client, jobsCollection, id)
	}

	docs, err := getDocs(ctx, r.client, refs)
	if err != nil {
		return nil, err
	}
	jobs, err := decodeAll[entity.Job](docs)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*entity.Job, len(jobs))
	for _, j := range jobs {
		out[j.ID] = j
	}
	return out, nil
}

// List pushes the equality constraints into the query and applies the rest
// in process, which keeps the collection free of composite indexes.
func (r *firestoreJobRepository) List(ctx context.Context, filter entity.JobFilter) ([]*entity.Job, error) {
	query := r.client.Collection(jobsCollection).Query
	if filter.Status != "" {
		query = query.Where("status", "==", string(filter.Status))
	}
	if filter.Duration != "" {
		query = query.Where("duration", "==", filter.Duration)
	}

	docs, err := queryDocs(ctx, query)
	if err != nil {
		return nil, err
	}
	all, err := decodeAll[entity.Job](docs)
	if err != nil {
		return nil, err
	}

	jobs := make([]*entity.Job, 0, len(all))
	for _, j := range all {
		if filter.Matches(j) {
			jobs = append(jobs, j)
		}
	}
	sort.Slice(jobs, func(a, b int) bool {
		return jobs[a].CreatedAt.After(jobs[b].CreatedAt)
	})
	return jobs, nil
}

func (r *firestoreJobRepository) Update(ctx context.Context, job *entity.Job) error {
	return setDoc(ctx, docRef(r.client, jobsCollection, job.ID), job)
}
