package task

import (
	"context"
	"sync"

	"github.com/taskloop/taskloop-backend/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	ListTopicsFunc     func(ctx context.Context, userID string, filter domain.TopicFilter) ([]domain.TopicGroup, error)
	ListCategoriesFunc func(ctx context.Context, userID string) ([]string, error)
	ListTasksFunc      func(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error)
	BulkInsertFunc     func(ctx context.Context, userID, topic, category string, contents []string) ([]domain.Task, error)
	UpdateFunc         func(ctx context.Context, userID string, id int64, params domain.UpdateParams) (*domain.Task, error)
	DeleteFunc         func(ctx context.Context, userID string, id int64) error
	DeleteTopicFunc    func(ctx context.Context, userID, topic string) (int64, error)

	calls struct {
		ListTopics []struct {
			UserID string
			Filter domain.TopicFilter
		}
		ListCategories []struct {
			UserID string
		}
		ListTasks []struct {
			UserID string
			Filter domain.TaskFilter
		}
		BulkInsert []struct {
			UserID   string
			Topic    string
			Category string
			Contents []string
		}
		Update []struct {
			UserID string
			ID     int64
			Params domain.UpdateParams
		}
		Delete []struct {
			UserID string
			ID     int64
		}
		DeleteTopic []struct {
			UserID string
			Topic  string
		}
	}
	lock sync.RWMutex
}

func (mock *taskRepoMock) ListTopics(ctx context.Context, userID string, filter domain.TopicFilter) ([]domain.TopicGroup, error) {
	if mock.ListTopicsFunc == nil {
		panic("taskRepoMock.ListTopicsFunc: method is nil but taskRepo.ListTopics was just called")
	}
	mock.lock.Lock()
	mock.calls.ListTopics = append(mock.calls.ListTopics, struct {
		UserID string
		Filter domain.TopicFilter
	}{UserID: userID, Filter: filter})
	mock.lock.Unlock()
	return mock.ListTopicsFunc(ctx, userID, filter)
}

func (mock *taskRepoMock) ListTopicsCalls() []struct {
	UserID string
	Filter domain.TopicFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListTopics
}

func (mock *taskRepoMock) ListCategories(ctx context.Context, userID string) ([]string, error) {
	if mock.ListCategoriesFunc == nil {
		panic("taskRepoMock.ListCategoriesFunc: method is nil but taskRepo.ListCategories was just called")
	}
	mock.lock.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, struct {
		UserID string
	}{UserID: userID})
	mock.lock.Unlock()
	return mock.ListCategoriesFunc(ctx, userID)
}

func (mock *taskRepoMock) ListCategoriesCalls() []struct {
	UserID string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListCategories
}

func (mock *taskRepoMock) ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	if mock.ListTasksFunc == nil {
		panic("taskRepoMock.ListTasksFunc: method is nil but taskRepo.ListTasks was just called")
	}
	mock.lock.Lock()
	mock.calls.ListTasks = append(mock.calls.ListTasks, struct {
		UserID string
		Filter domain.TaskFilter
	}{UserID: userID, Filter: filter})
	mock.lock.Unlock()
	return mock.ListTasksFunc(ctx, userID, filter)
}

func (mock *taskRepoMock) ListTasksCalls() []struct {
	UserID string
	Filter domain.TaskFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListTasks
}

func (mock *taskRepoMock) BulkInsert(ctx context.Context, userID, topic, category string, contents []string) ([]domain.Task, error) {
	if mock.BulkInsertFunc == nil {
		panic("taskRepoMock.BulkInsertFunc: method is nil but taskRepo.BulkInsert was just called")
	}
	mock.lock.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, struct {
		UserID   string
		Topic    string
		Category string
		Contents []string
	}{UserID: userID, Topic: topic, Category: category, Contents: contents})
	mock.lock.Unlock()
	return mock.BulkInsertFunc(ctx, userID, topic, category, contents)
}

func (mock *taskRepoMock) BulkInsertCalls() []struct {
	UserID   string
	Topic    string
	Category string
	Contents []string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.BulkInsert
}

func (mock *taskRepoMock) Update(ctx context.Context, userID string, id int64, params domain.UpdateParams) (*domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskRepoMock.UpdateFunc: method is nil but taskRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID string
		ID     int64
		Params domain.UpdateParams
	}{UserID: userID, ID: id, Params: params})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, id, params)
}

func (mock *taskRepoMock) UpdateCalls() []struct {
	UserID string
	ID     int64
	Params domain.UpdateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *taskRepoMock) Delete(ctx context.Context, userID string, id int64) error {
	if mock.DeleteFunc == nil {
		panic("taskRepoMock.DeleteFunc: method is nil but taskRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID string
		ID     int64
	}{UserID: userID, ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *taskRepoMock) DeleteCalls() []struct {
	UserID string
	ID     int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *taskRepoMock) DeleteTopic(ctx context.Context, userID, topic string) (int64, error) {
	if mock.DeleteTopicFunc == nil {
		panic("taskRepoMock.DeleteTopicFunc: method is nil but taskRepo.DeleteTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteTopic = append(mock.calls.DeleteTopic, struct {
		UserID string
		Topic  string
	}{UserID: userID, Topic: topic})
	mock.lock.Unlock()
	return mock.DeleteTopicFunc(ctx, userID, topic)
}

func (mock *taskRepoMock) DeleteTopicCalls() []struct {
	UserID string
	Topic  string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteTopic
}
