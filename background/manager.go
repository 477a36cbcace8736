package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openrelief/relief-api/external/push"
	"github.com/openrelief/relief-api/store"
)

// background task names
const (
	TaskBroadcastNewRequest   = "broadcast_new_request"
	TaskNotifyRequestAccepted = "notify_request_accepted"
)

// BackgroundManager runs the notification jobs of the relief service
type BackgroundManager struct {
	store store.ReliefCore

	mongo store.MongoStore

	push *push.Client

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	p := push.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store:      store.NewReliefStore(ormDB, mongoStore, nil),
		mongo:      mongoStore,
		push:       p,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("relief-worker", 5)
	return m.worker.Launch()
}
