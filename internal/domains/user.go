package domains

const MaxUsernameBytes = 63

type User struct {
	ID       string
	Name     string
	TeamName string
	IsActive bool
}
