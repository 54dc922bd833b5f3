package interfaces

type SchedulerInterface interface {
	Init() error
	Stop()
	Restore() error
	Persist() error
}
