package models

// Goal is a target/current pair for one metric. Current is not clamped.
type Goal struct {
	ID      string  `json:"id"`
	Metric  Metric  `json:"metric"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
	Unit    string  `json:"unit"`
	Title   string  `json:"title"`
}

// NewGoal is a goal before an identifier has been assigned.
type NewGoal struct {
	Metric  Metric  `json:"metric"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
	Unit    string  `json:"unit"`
	Title   string  `json:"title"`
}

// Profile is a user's identity plus their health series and goals.
type Profile struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Avatar string     `json:"avatar"`
	Data   HealthData `json:"data"`
	Goals  []Goal     `json:"goals"`
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	c := p
	c.Data = p.Data.Clone()
	c.Goals = append([]Goal(nil), p.Goals...)
	return c
}

// User is the public identity returned by a successful login.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthState is the persisted session record.
type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}
