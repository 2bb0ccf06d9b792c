package document

import (
	"github.com/chenghui/supervision-go/internal/domain/report"
)

func renderDailyLog(r report.Report, projectName string) Document {
	d, _ := decodeDailyLog(r)
	year, month, day := SplitDate(r.Date)

	return Document{
		ReportID: r.ID,
		Title:    "监理日志",
		Header: []Field{
			{Label: "年", Value: year},
			{Label: "月", Value: month},
			{Label: "日", Value: day},
			{Label: "天气", Value: d.Weather},
			{Label: "温度", Value: d.Temp},
		},
		Tables: []Table{{Rows: []Row{
			row(hcell("项目名称"), wide(projectName, 3)),
			row(hcell("施工地点"), wide(d.Location, 3)),
			row(hcell("人员"), wide(d.Personnel, 3)),
			row(hcell("机械"), wide(d.Machinery, 3)),
			row(hcell("材料"), wide(d.Materials, 3)),
			row(hcell("施工情况"), wide(d.Progress, 3)),
			row(hcell("监理情况"), wide(d.Supervision, 3)),
			row(hcell("其他"), wide(d.Others, 3)),
		}}},
	}
}

func renderSideStation(r report.Report, projectName string) Document {
	d, _ := decodeSideStation(r)
	startDate, startClock := SplitDateTime(d.StartTime)
	endDate, endClock := SplitDateTime(d.EndTime)

	return Document{
		ReportID: r.ID,
		Title:    "旁站记录",
		Header: []Field{
			{Label: "工程名称", Value: projectName},
		},
		Tables: []Table{{Rows: []Row{
			row(hcell("旁站部位"), cell(d.KeyPart), hcell("施工单位"), cell(d.Contractor)),
			row(hcell("开始日期"), cell(startDate), hcell("开始时刻"), cell(startClock)),
			row(hcell("结束日期"), cell(endDate), hcell("结束时刻"), cell(endClock)),
			row(hcell("施工情况"), wide(d.ProcessDetail, 3)),
			row(hcell("问题及处理"), wide(d.Problems, 3)),
		}}},
		Footer: []string{"旁站监理人员（签字）：_________________"},
	}
}

func renderWitness(r report.Report, projectName string) Document {
	d, _ := decodeWitness(r)

	// the printed 规格/批次 cell falls back to the batch quantity
	spec := d.Spec
	if spec == "" {
		spec = d.Quantity
	}

	return Document{
		ReportID: r.ID,
		Title:    "工程质量见证记录表",
		Tables: []Table{{Rows: []Row{
			row(hcell("工程名称"), wide(projectName, 3)),
			row(hcell("见证项目"), cell(d.WitnessItem), hcell("见证日期"), cell(d.WitnessDate)),
			row(hcell("见证部位"), cell(d.Part), hcell("规格/批次"), cell(spec)),
			row(hcell("见证内容及结论"), wide(d.WitnessResult, 3)),
		}}},
		Footer: []string{
			"施工单位见证人：_________________",
			"监理单位见证人：_________________",
		},
	}
}

func renderNotice(r report.Report, projectName string) Document {
	d, _ := decodeNotice(r)
	year, month, day := SplitDate(r.Date)
	if len(year) >= 4 {
		// the form prints the year as 20YY
		year = "20" + year[2:4]
	} else {
		year = ""
	}

	return Document{
		ReportID: r.ID,
		Title:    "监理通知单",
		Code:     noticeNumber(r.ID),
		Header: []Field{
			{Label: "工程名称", Value: projectName},
			{Label: "编号", Value: noticeNumber(r.ID)},
			{Label: "致", Value: d.Recipient},
		},
		Tables: []Table{{Rows: []Row{
			row(hcell("事由"), wide(d.Reason, 3)),
			row(hcell("存在的问题"), wide(d.Problems, 3)),
			row(hcell("通知内容"), wide(d.NoticeContent, 3)),
		}}},
		Footer: []string{
			"特此通知！",
			"项目监理机构(盖章)：" + institution,
			"总/专业监理工程师(签字)：_________________",
			"日期： " + year + " 年 " + month + " 月 " + day + " 日",
		},
	}
}

func renderMinutes(r report.Report, projectName string) Document {
	d, _ := decodeMinutes(r)
	meetDate, meetClock := SplitDateTime(d.MeetTime)

	othersUnit := d.OthersUnit
	if othersUnit == "" {
		othersUnit = "无"
	}

	return Document{
		ReportID: r.ID,
		Title:    "监理例会会议纪要",
		Tables: []Table{
			{Rows: []Row{
				row(hcell("工程名称"), cell(projectName), hcell("主持人"), cell(d.Host)),
				row(hcell("会议日期"), cell(meetDate), hcell("会议时间"), cell(meetClock)),
				row(hcell("会议地点"), wide(d.Location, 3)),
				row(hcell("建设单位"), wide(d.ClientUnit, 3)),
				row(hcell("施工单位"), wide(d.ContractorUnit, 3)),
				row(hcell("监理单位"), wide(d.SupervisorUnit, 3)),
				row(hcell("其他单位"), wide(othersUnit, 3)),
			}},
			{Rows: []Row{
				row(hcell("一、施工单位内容"), wide(d.ContractorContent, 3)),
				row(hcell("二、监理单位内容"), wide("", 3)),
				row(hcell("质量问题"), wide(d.QualityIssues, 3)),
				row(hcell("进度问题"), wide(d.ProgressIssues, 3)),
				row(hcell("安全文明施工"), wide(d.SafetyIssues, 3)),
				row(hcell("其他"), wide(d.OtherSupervision, 3)),
				row(hcell("三、建设单位内容"), wide(d.ClientContent, 3)),
				row(hcell("四、需要解决的问题"), wide(d.Unresolved, 3)),
			}},
		},
	}
}

func renderMonthly(r report.Report, projectName string) Document {
	d, _ := decodeMonthly(r)

	review := d.MonthlyReview
	if review == "" {
		review = "（此处请填写详细评述内容）"
	}

	return Document{
		ReportID: r.ID,
		Title:    "工程监理情况月报",
		Tables: []Table{{Rows: []Row{
			row(hcell("工程名称"), cell(projectName), hcell("填报日期"), cell(r.Date)),
			row(hcell("进度完成情况"), wide(d.ProgressStatus, 3)),
			row(hcell("质量控制情况"), wide(d.QualityStatus, 3)),
			row(hcell("投资控制情况"), wide(d.InvestmentStatus, 3)),
			row(hcell("安全控制情况"), wide(d.SafetyStatus, 3)),
			row(hcell("本月监理工作综合评述及下月监理工作重点"), wide(review, 3)),
		}}},
		Footer: []string{"总监理工程师：_________________"},
	}
}

func renderMajorEvent(r report.Report, projectName string) Document {
	d, _ := decodeMajorEvent(r)

	return Document{
		ReportID: r.ID,
		Title:    "重大事项直报/审批单",
		Code:     ReportCode(r.ID),
		Header: []Field{
			{Label: "类别", Value: d.EventCategory},
			{Label: "程度", Value: d.Urgency},
			{Label: "报告编号", Value: ReportCode(r.ID)},
		},
		Tables: []Table{{Rows: []Row{
			row(hcell("项目名称"), wide(projectName, 3)),
			row(hcell("报告人员"), cell(r.AuthorName), hcell("报告时间"), cell(r.Date)),
			row(hcell("一、事件详情描述"), wide(d.EventDesc, 3)),
			row(hcell("二、已采取紧急措施"), wide(d.Measures, 3)),
			row(hcell("总监理工程师意见"), wide("", 3)),
			row(hcell("公司管理层批示"), wide("", 3)),
		}}},
		Footer: []string{"签字：_________________ 日期：____年__月__日"},
	}
}

// The decode helpers tolerate malformed payloads: a structurally wrong details
// blob degrades to the zero value, so the form prints blank fields.

func decodeDailyLog(r report.Report) (report.DailyLogDetails, bool) {
	d, err := report.DecodeDetails(report.TypeDailyLog, r.Details)
	v, _ := d.(report.DailyLogDetails)
	return v, err == nil
}

func decodeSideStation(r report.Report) (report.SideStationDetails, bool) {
	d, err := report.DecodeDetails(report.TypeSideStation, r.Details)
	v, _ := d.(report.SideStationDetails)
	return v, err == nil
}

func decodeWitness(r report.Report) (report.WitnessDetails, bool) {
	d, err := report.DecodeDetails(report.TypeWitness, r.Details)
	v, _ := d.(report.WitnessDetails)
	return v, err == nil
}

func decodeNotice(r report.Report) (report.NoticeDetails, bool) {
	d, err := report.DecodeDetails(report.TypeNotice, r.Details)
	v, _ := d.(report.NoticeDetails)
	return v, err == nil
}

func decodeMinutes(r report.Report) (report.MinutesDetails, bool) {
	d, err := report.DecodeDetails(report.TypeMinutes, r.Details)
	v, _ := d.(report.MinutesDetails)
	return v, err == nil
}

func decodeMonthly(r report.Report) (report.MonthlyDetails, bool) {
	d, err := report.DecodeDetails(report.TypeMonthly, r.Details)
	v, _ := d.(report.MonthlyDetails)
	return v, err == nil
}

func decodeMajorEvent(r report.Report) (report.MajorEventDetails, bool) {
	d, err := report.DecodeDetails(report.TypeMajorEvent, r.Details)
	v, _ := d.(report.MajorEventDetails)
	return v, err == nil
}
