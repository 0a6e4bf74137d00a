package dto

// ReviewHolidayReportRequest carries a review decision on a report
type ReviewHolidayReportRequest struct {
	Status         string `json:"status" binding:"required,oneof=APPROVED REJECTED UNDER_REVIEW" example:"APPROVED"`
	ReviewComments string `json:"reviewComments" example:"Approved, medical certificate attached"`
}
