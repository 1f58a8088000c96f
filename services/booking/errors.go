package booking

// Stable messages clients can branch on.
const (
	MsgBookingNotFound      = "booking not found"
	MsgServiceNotFound      = "service not found"
	MsgProviderNotFound     = "provider not found"
	MsgSeekerNotFound       = "seeker not found"
	MsgTransitionNotAllowed = "transition not allowed from current status"
	MsgConcurrentUpdate     = "booking was updated concurrently, please retry"
	MsgNotBookingProvider   = "only the booking's provider may change its status"
	MsgNotBookingParty      = "you are not a party to this booking"
)
