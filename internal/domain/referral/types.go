package referral

import "slices"

type Status string

const (
	StatusApplied   Status = "applied"
	StatusQualified Status = "qualified"
	StatusCompleted Status = "completed"
)

var transitions = map[Status][]Status{
	StatusApplied:   {StatusQualified, StatusCompleted},
	StatusQualified: {StatusCompleted},
}

// rank orders states so a single evaluation keeps the most advanced one.
var rank = map[Status]int{
	StatusApplied:   0,
	StatusQualified: 1,
	StatusCompleted: 2,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := rank[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(transitions[s], target)
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func moreAdvanced(a, b Status) Status {
	if rank[b] > rank[a] {
		return b
	}
	return a
}
