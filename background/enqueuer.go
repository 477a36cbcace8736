package background

import (
	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
)

// Enqueuer submits background jobs without running a worker. The API server
// holds one to fire notifications after writes.
type Enqueuer struct {
	taskServer *machinery.Server
}

func NewEnqueuer(taskServer *machinery.Server) *Enqueuer {
	return &Enqueuer{
		taskServer: taskServer,
	}
}

func (e *Enqueuer) EnqueueBroadcastNewRequest(requestID string) error {
	_, err := e.taskServer.SendTask(&tasks.Signature{
		Name: TaskBroadcastNewRequest,
		Args: []tasks.Arg{
			{Type: "string", Value: requestID},
		},
	})
	return err
}

func (e *Enqueuer) EnqueueNotifyRequestAccepted(requestID string) error {
	_, err := e.taskServer.SendTask(&tasks.Signature{
		Name: TaskNotifyRequestAccepted,
		Args: []tasks.Arg{
			{Type: "string", Value: requestID},
		},
	})
	return err
}
