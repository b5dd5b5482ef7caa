package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"travelplan-frontend/internal/model"
	"travelplan-frontend/internal/notify"
	"travelplan-frontend/internal/service"
	"travelplan-frontend/pkg/logger"
)

type PageHandler struct {
	form *service.FormService
	plan *service.PlanService
	sink *notify.Sink
}

func NewPageHandler(form *service.FormService, plan *service.PlanService, sink *notify.Sink) *PageHandler {
	return &PageHandler{
		form: form,
		plan: plan,
		sink: sink,
	}
}

// RequirementPage 渲染需求输入页。
func (h *PageHandler) RequirementPage(c *gin.Context) {
	c.HTML(http.StatusOK, "requirement.html", gin.H{
		"Form":    h.form.State(),
		"Notices": h.sink.Active(),
	})
}

// Submit 接收表单提交，成功后跳转到方案展示页。
// 数字字段解析失败时按约定兜底（天数 1、预算 100），不阻止提交。
func (h *PageHandler) Submit(c *gin.Context) {
	h.form.SetScene(c.PostForm("scene"))

	days, err := strconv.Atoi(c.PostForm("days"))
	if err != nil {
		days = 1
	}
	h.form.SetDays(days)

	budget, err := strconv.ParseFloat(c.PostForm("budget"), 64)
	if err != nil {
		budget = 100
	}
	h.form.SetBudget(budget)

	for _, tag := range []string{"food", "history", "nature"} {
		h.form.SetInterest(tag, c.PostForm(tag) == "on")
	}
	h.form.SetDemand(c.PostForm("demand"))

	target, err := h.form.Submit(c.Request.Context())
	if err != nil {
		// 错误已在网关层通知，留在需求页
		logger.Errorf("提交需求失败: %v", err)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.Redirect(http.StatusSeeOther, target)
}

// PlanPage 渲染方案展示页。没有需求快照时直接重定向回需求页，
// 不渲染任何行程内容。
func (h *PageHandler) PlanPage(c *gin.Context) {
	if !h.plan.Load() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, "plan.html", gin.H{
		"Form":        h.plan.Form(),
		"Itinerary":   h.plan.Itinerary(),
		"TotalBudget": h.plan.TotalBudget(),
		"OverBudget":  h.plan.OverBudget(),
		"Remaining":   h.plan.Remaining(),
		"Notices":     h.sink.Active(),
		"Alert":       c.Query("alert"),
	})
}

// AdjustPlan 处理动态调整按钮。前置校验失败（缺少方案ID）时
// 以阻断式提示返回展示页，不发起网络请求。
func (h *PageHandler) AdjustPlan(c *gin.Context) {
	kind := c.PostForm("adjust_type")
	if kind != model.AdjustWeather && kind != model.AdjustCrowd {
		c.JSON(http.StatusBadRequest, gin.H{"error": "adjust_type必须是'weather'或'crowd'"})
		return
	}

	msg, err := h.plan.AdjustPlan(c.Request.Context(), kind)
	if err != nil {
		if errors.Is(err, service.ErrMissingPlanID) {
			c.Redirect(http.StatusSeeOther, "/plan?alert="+url.QueryEscape(err.Error()))
			return
		}
		// 网关已完成通知，回到展示页即可
		logger.Errorf("调整方案失败: %v", err)
		c.Redirect(http.StatusSeeOther, "/plan")
		return
	}

	c.Redirect(http.StatusSeeOther, "/plan?alert="+url.QueryEscape(msg))
}

func (h *PageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}
