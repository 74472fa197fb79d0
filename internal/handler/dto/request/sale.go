package request

// ExecuteSaleRequest is the body of the execution call. The requester id is a
// phone or account number; the token must be the one handed out by the
// exposure endpoint.
type ExecuteSaleRequest struct {
	RequesterID int64  `json:"requesterId" binding:"required,gt=0"`
	Token       string `json:"token" binding:"required"`
}

// ListSalesRequest holds the paging query parameters.
type ListSalesRequest struct {
	Offset int32 `form:"offset,default=0" binding:"gte=0"`
	Limit  int32 `form:"limit,default=4" binding:"gte=1,lte=100"`
}
