package reservation

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusCompleted:
		return true
	default:
		return false
	}
}
