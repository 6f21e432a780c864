package controllers

import (
	"net/http"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type RecordController struct {
	records *services.RecordService
	stats   *services.StatsService
	loc     *time.Location
}

func NewRecordController(records *services.RecordService, stats *services.StatsService, loc *time.Location) *RecordController {
	if loc == nil {
		loc = time.UTC
	}
	return &RecordController{records: records, stats: stats, loc: loc}
}

// POST /api/records
func (rc *RecordController) Create(c *gin.Context) {
	var in services.CreateRecordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid record payload", err)
		return
	}

	record, err := rc.records.Create(currentUserID(c), in)
	if err != nil {
		fail(c, err, "failed to create record")
		return
	}
	utils.SendSuccess(c, http.StatusCreated, "record created", record)
}

// GET /api/records?startDate=&endDate=&mealType=
func (rc *RecordController) List(c *gin.Context) {
	start, err := parseDateQuery(c.Query("startDate"), false, rc.loc)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid startDate", err)
		return
	}
	end, err := parseDateQuery(c.Query("endDate"), true, rc.loc)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid endDate", err)
		return
	}

	records, err := rc.records.List(currentUserID(c), services.RecordFilter{
		StartDate: start,
		EndDate:   end,
		MealType:  c.Query("mealType"),
	})
	if err != nil {
		fail(c, err, "failed to list records")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "records listed", records)
}

// GET /api/records/stats/day?date=
func (rc *RecordController) DayStats(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), rc.loc)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid or missing date", err)
		return
	}

	stats, err := rc.stats.DayStats(currentUserID(c), date)
	if err != nil {
		fail(c, err, "failed to compute day stats")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "day stats computed", stats)
}

// GET /api/records/:id
func (rc *RecordController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	record, err := rc.records.Get(currentUserID(c), id)
	if err != nil {
		fail(c, err, "failed to fetch record")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "record fetched", record)
}

// PUT /api/records/:id
func (rc *RecordController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in services.UpdateRecordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid record payload", err)
		return
	}

	record, err := rc.records.Update(currentUserID(c), id, in)
	if err != nil {
		fail(c, err, "failed to update record")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "record updated", record)
}

// DELETE /api/records/:id
func (rc *RecordController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := rc.records.Delete(currentUserID(c), id); err != nil {
		fail(c, err, "failed to delete record")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "record deleted", nil)
}
