package checkoutevents

const (
	TopicName             = "checkout"
	checkoutStartedName   = TopicName + ".started"
	checkoutCompletedName = TopicName + ".completed"
	checkoutFailedName    = TopicName + ".failed"
)

type CheckoutStarted struct {
	CheckoutUID  string
	SessionUID   string
	TotalInCents int
}

func (e CheckoutStarted) GetEventTypeName() string {
	return checkoutStartedName
}

func (e CheckoutStarted) GetAggregateName() string {
	return e.CheckoutUID
}

type CheckoutCompleted struct {
	CheckoutUID  string
	SessionUID   string
	TotalInCents int
	PaymentUID   string
}

func (e CheckoutCompleted) GetEventTypeName() string {
	return checkoutCompletedName
}

func (e CheckoutCompleted) GetAggregateName() string {
	return e.CheckoutUID
}

type CheckoutFailed struct {
	CheckoutUID string
	SessionUID  string
	Reason      string
}

func (e CheckoutFailed) GetEventTypeName() string {
	return checkoutFailedName
}

func (e CheckoutFailed) GetAggregateName() string {
	return e.CheckoutUID
}
