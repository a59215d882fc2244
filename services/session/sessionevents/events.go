package sessionevents

const (
	TopicName         = "session"
	userLoggedInName  = TopicName + ".loggedin"
	userLoggedOutName = TopicName + ".loggedout"
)

type UserLoggedIn struct {
	SessionUID  string
	DisplayName string
}

func (e UserLoggedIn) GetEventTypeName() string {
	return userLoggedInName
}

func (e UserLoggedIn) GetAggregateName() string {
	return e.SessionUID
}

type UserLoggedOut struct {
	SessionUID string
}

func (e UserLoggedOut) GetEventTypeName() string {
	return userLoggedOutName
}

func (e UserLoggedOut) GetAggregateName() string {
	return e.SessionUID
}
