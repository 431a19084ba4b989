package repository

import (
	"context"
	"net/url"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"gighub/internal/domain/entity"
	"gighub/internal/domain/repository"
	"gighub/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

type emailClaim struct {
	UserID string `firestore:"userId"`
}

// Create writes the user together with a user_emails/{email} claim so two
// accounts can never share an address. The claim id is the escaped email
// since addresses may contain '/'.
func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Email = entity.NormalizeEmail(user.Email)

	return runInTransaction(ctx, r.client, func(ctx context.Context) error {
		claim := docRef(r.client, userEmailsCollection, url.PathEscape(user.Email))
		if err := createDoc(ctx, claim, emailClaim{UserID: user.ID}); err != nil {
			return err
		}
		return createDoc(ctx, docRef(r.client, usersCollection, user.ID), user)
	})
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := getDoc(ctx, docRef(r.client, usersCollection, id))
	if err != nil {
		return nil, readErr(err, "User")
	}
	return decode[entity.User](doc)
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := r.client.Collection(usersCollection).Where("email", "==", entity.NormalizeEmail(email)).Limit(1)
	docs, err := queryDocs(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, errors.NotFound("User", nil)
	}
	return decode[entity.User](docs[0])
}

func (r *firestoreUserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	ids = uniqueIDs(ids)
	refs := make([]*firestore.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = docRef(r.client, usersCollection, id)
	}

	docs, err := getDocs(ctx, r.client, refs)
	if err != nil {
		return nil, err
	}
	users, err := decodeAll[entity.User](docs)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*entity.User, len(users))
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	return setDoc(ctx, docRef(r.client, usersCollection, user.ID), user)
}
