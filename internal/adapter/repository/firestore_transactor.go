package repository

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gighub/internal/domain/repository"
	"gighub/pkg/errors"
)

const (
	usersCollection       = "users"
	userEmailsCollection  = "user_emails"
	jobsCollection        = "jobs"
	proposalsCollection   = "proposals"
	submissionsCollection = "work_submissions"
	paymentsCollection    = "payments"
	earningsCollection    = "earnings"
	reviewsCollection     = "reviews"
)

type txKey struct{}

type firestoreTransactor struct {
	client *firestore.Client
}

func NewFirestoreTransactor(client *firestore.Client) repository.Transactor {
	return &firestoreTransactor{client: client}
}

// WithinTransaction runs fn in a Firestore transaction. Nested calls join the
// outer transaction.
func (t *firestoreTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return runInTransaction(ctx, t.client, fn)
}

func runInTransaction(ctx context.Context, client *firestore.Client, fn func(ctx context.Context) error) error {
	if txFrom(ctx) != nil {
		return fn(ctx)
	}

	err := client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if status.Code(err) == codes.AlreadyExists {
		return errors.Conflict("document already exists")
	}
	return err
}

func txFrom(ctx context.Context) *firestore.Transaction {
	tx, _ := ctx.Value(txKey{}).(*firestore.Transaction)
	return tx
}

// validDocID reports whether id names a document directly under a
// collection. Firestore splits ids on '/' and rejects ".", ".." and
// ids of the form __name__.
func validDocID(id string) bool {
	if id == "" || id == "." || id == ".." || len(id) > 1500 {
		return false
	}
	if strings.Contains(id, "/") {
		return false
	}
	return !(len(id) >= 4 && strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__"))
}

// docRef returns nil when id is not a valid document id. The doc helpers
// treat a nil ref as a missing document on reads and a validation error on
// writes.
func docRef(client *firestore.Client, collection, id string) *firestore.DocumentRef {
	if !validDocID(id) {
		return nil
	}
	return client.Collection(collection).Doc(id)
}

func getDoc(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if ref == nil {
		return nil, status.Error(codes.NotFound, "invalid document id")
	}
	if tx := txFrom(ctx); tx != nil {
		return tx.Get(ref)
	}
	return ref.Get(ctx)
}

func getDocs(ctx context.Context, client *firestore.Client, refs []*firestore.DocumentRef) ([]*firestore.DocumentSnapshot, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	if tx := txFrom(ctx); tx != nil {
		return tx.GetAll(refs)
	}
	return client.GetAll(ctx, refs)
}

func queryDocs(ctx context.Context, q firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	if tx := txFrom(ctx); tx != nil {
		return tx.Documents(q).GetAll()
	}
	return q.Documents(ctx).GetAll()
}

// createDoc fails with a Conflict error when the document exists. Inside a
// transaction the check happens at commit.
func createDoc(ctx context.Context, ref *firestore.DocumentRef, data interface{}) error {
	if ref == nil {
		return errors.Validation("Invalid document id.")
	}
	if tx := txFrom(ctx); tx != nil {
		return tx.Create(ref, data)
	}
	_, err := ref.Create(ctx, data)
	if status.Code(err) == codes.AlreadyExists {
		return errors.Conflict("document already exists")
	}
	return err
}

func setDoc(ctx context.Context, ref *firestore.DocumentRef, data interface{}) error {
	if ref == nil {
		return errors.Validation("Invalid document id.")
	}
	if tx := txFrom(ctx); tx != nil {
		return tx.Set(ref, data)
	}
	_, err := ref.Set(ctx, data)
	return err
}

// readErr maps a missing document to NotFound.
func readErr(err error, resource string) error {
	if status.Code(err) == codes.NotFound {
		return errors.NotFound(resource, err)
	}
	return err
}

func decode[T any](doc *firestore.DocumentSnapshot) (*T, error) {
	var v T
	if err := doc.DataTo(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func decodeAll[T any](docs []*firestore.DocumentSnapshot) ([]*T, error) {
	out := make([]*T, 0, len(docs))
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		v, err := decode[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// uniqueIDs drops duplicates and ids no document can have.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !validDocID(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// partyFilter matches documents where userID is the client or the freelancer.
func partyFilter(userID string) firestore.EntityFilter {
	return firestore.OrFilter{
		Filters: []firestore.EntityFilter{
			firestore.PropertyFilter{Path: "clientId", Operator: "==", Value: userID},
			firestore.PropertyFilter{Path: "freelancerId", Operator: "==", Value: userID},
		},
	}
}
