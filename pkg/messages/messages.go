package messages

const (
	BadStatusCodeMsg     = "stats page returned status code %d on URL %s"
	FailedToParseMsg     = "failed to parse the stats table"
	FiltersNotNil        = "filters can't be nil"
	IngestInProgress     = "ingestion already in progress, please wait"
	MissingUserRecord    = "roster of user %s has no identity record"
	OAuthExchangeFailed  = "discord OAuth exchange failed"
	RequestFailedMsg     = "request failed on URL %s"
	RosterPlayerInactive = "player %s is not active"
)
