package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskvault/internal/core/domain"
	"taskvault/internal/core/ports"
)

const tasksCollection = "tasks"

type TaskRepository struct {
	collection *mongo.Collection
}

type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	Title       string             `bson:"title"`
	Description *string            `bson:"description,omitempty"`
	Status      string             `bson:"status"`
	DueDate     *time.Time         `bson:"due_date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(database *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: database.Collection(tasksCollection)}
}

func (r *TaskRepository) Insert(ctx context.Context, ownerID string, draft domain.CreateTaskInput) (domain.Task, error) {
	if err := draft.Validate(); err != nil {
		return domain.Task{}, err
	}

	status := draft.Status
	if status == "" {
		status = domain.TaskStatusPending
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := taskDocument{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(draft.Title),
		Description: draft.Description,
		Status:      string(status),
		DueDate:     draft.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.Task{}, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return mapTaskDocumentToDomainTask(doc), nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, mapTaskDocumentToDomainTask(doc))
	}

	return tasks, nil
}

func (r *TaskRepository) FindByOwner(ctx context.Context, taskID, ownerID string) (domain.Task, error) {
	filter, err := ownedTaskFilter(taskID, ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	var doc taskDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocumentToDomainTask(doc), nil
}

func (r *TaskRepository) UpdateByOwner(ctx context.Context, taskID, ownerID string, patch domain.UpdateTaskInput) (domain.Task, error) {
	if err := patch.Validate(); err != nil {
		return domain.Task{}, err
	}

	// An empty patch mutates nothing, not even updated_at; the caller still
	// gets the task or a not-found like any other scoped lookup.
	if patch.Empty() {
		return r.FindByOwner(ctx, taskID, ownerID)
	}

	filter, err := ownedTaskFilter(taskID, ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	set := bson.M{"updated_at": time.Now().UTC().Truncate(time.Millisecond)}
	unset := bson.M{}

	if patch.Title != nil {
		set["title"] = strings.TrimSpace(*patch.Title)
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.DescriptionSet {
		if patch.Description != nil {
			set["description"] = *patch.Description
		} else {
			unset["description"] = ""
		}
	}
	if patch.DueDateSet {
		if patch.DueDate != nil {
			set["due_date"] = *patch.DueDate
		} else {
			unset["due_date"] = ""
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var doc taskDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocumentToDomainTask(doc), nil
}

func (r *TaskRepository) DeleteByOwner(ctx context.Context, taskID, ownerID string) (domain.Task, error) {
	filter, err := ownedTaskFilter(taskID, ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	var doc taskDocument
	if err := r.collection.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocumentToDomainTask(doc), nil
}

// ownedTaskFilter builds the single filter used by every scoped operation.
// The owner match lives in the same query as the id match, so a foreign task
// and a missing task are indistinguishable to the caller. A malformed id
// cannot name any owned document and is reported the same way.
func ownedTaskFilter(taskID, ownerID string) (bson.M, error) {
	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	return bson.M{"_id": objectID, "owner_id": ownerID}, nil
}

func mapTaskDocumentToDomainTask(doc taskDocument) domain.Task {
	task := domain.Task{
		ID:        doc.ID.Hex(),
		OwnerID:   doc.OwnerID,
		Title:     doc.Title,
		Status:    domain.TaskStatus(doc.Status),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}

	if doc.Description != nil {
		value := *doc.Description
		task.Description = &value
	}

	if doc.DueDate != nil {
		value := *doc.DueDate
		task.DueDate = &value
	}

	return task
}
