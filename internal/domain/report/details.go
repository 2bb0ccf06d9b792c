package report

import "encoding/json"

// Details is the tagged union of per-type structured payloads. Every field is
// optional on the wire; absent fields print as blank cells, never as errors.
type Details interface {
	isDetails()
}

// DailyLogDetails backs the 监理日志 form.
type DailyLogDetails struct {
	Weather     string `json:"weather,omitempty"`
	Temp        string `json:"temp,omitempty"`
	Location    string `json:"location,omitempty"`
	Personnel   string `json:"personnel,omitempty"`
	Machinery   string `json:"machinery,omitempty"`
	Materials   string `json:"materials,omitempty"`
	Progress    string `json:"progress,omitempty"`
	Supervision string `json:"supervision,omitempty"`
	Others      string `json:"others,omitempty"`
}

// SideStationDetails backs the 旁站记录 form. StartTime/EndTime hold a combined
// date-time value ("2006-01-02T15:04"); display splits it, storage keeps it whole.
type SideStationDetails struct {
	KeyPart       string `json:"keyPart,omitempty"`
	Contractor    string `json:"contractor,omitempty"`
	StartTime     string `json:"startTime,omitempty"`
	EndTime       string `json:"endTime,omitempty"`
	ProcessDetail string `json:"processDetail,omitempty"`
	Problems      string `json:"problems,omitempty"`
}

// WitnessDetails backs the 见证记录 form. Spec falls back to Quantity when blank.
type WitnessDetails struct {
	WitnessItem   string `json:"witnessItem,omitempty"`
	WitnessDate   string `json:"witnessDate,omitempty"`
	Part          string `json:"part,omitempty"`
	Spec          string `json:"spec,omitempty"`
	Quantity      string `json:"quantity,omitempty"`
	WitnessResult string `json:"witnessResult,omitempty"`
}

// NoticeDetails backs the 监理通知单 form.
type NoticeDetails struct {
	Recipient     string `json:"recipient,omitempty"`
	Reason        string `json:"reason,omitempty"`
	Problems      string `json:"problems,omitempty"`
	NoticeContent string `json:"noticeContent,omitempty"`
}

// MinutesDetails backs the 会议纪要 form.
type MinutesDetails struct {
	Host              string `json:"host,omitempty"`
	MeetTime          string `json:"meetTime,omitempty"`
	Location          string `json:"location,omitempty"`
	ClientUnit        string `json:"clientUnit,omitempty"`
	ContractorUnit    string `json:"contractorUnit,omitempty"`
	SupervisorUnit    string `json:"supervisorUnit,omitempty"`
	OthersUnit        string `json:"othersUnit,omitempty"`
	ContractorContent string `json:"contractorContent,omitempty"`
	QualityIssues     string `json:"qualityIssues,omitempty"`
	ProgressIssues    string `json:"progressIssues,omitempty"`
	SafetyIssues      string `json:"safetyIssues,omitempty"`
	OtherSupervision  string `json:"otherSupervision,omitempty"`
	ClientContent     string `json:"clientContent,omitempty"`
	Unresolved        string `json:"unresolved,omitempty"`
}

// MonthlyDetails backs the 监理月报 form.
type MonthlyDetails struct {
	ProgressStatus   string `json:"progressStatus,omitempty"`
	QualityStatus    string `json:"qualityStatus,omitempty"`
	InvestmentStatus string `json:"investmentStatus,omitempty"`
	SafetyStatus     string `json:"safetyStatus,omitempty"`
	MonthlyReview    string `json:"monthlyReview,omitempty"`
}

// MajorEventDetails backs the 重大事件直报 form.
type MajorEventDetails struct {
	EventCategory string `json:"eventCategory,omitempty"`
	Urgency       string `json:"urgency,omitempty"`
	EventDesc     string `json:"eventDesc,omitempty"`
	Measures      string `json:"measures,omitempty"`
}

func (DailyLogDetails) isDetails()    {}
func (SideStationDetails) isDetails() {}
func (WitnessDetails) isDetails()     {}
func (NoticeDetails) isDetails()      {}
func (MinutesDetails) isDetails()     {}
func (MonthlyDetails) isDetails()     {}
func (MajorEventDetails) isDetails()  {}

// DecodeDetails unmarshals raw into the variant selected by t. Empty input yields
// the variant's zero value. A JSON error means the payload is structurally wrong
// for the type; callers that must not fail (renderer, export) discard the error
// and use the returned zero-value details.
func DecodeDetails(t Type, raw []byte) (Details, error) {
	var (
		d   Details
		err error
	)
	switch t {
	case TypeDailyLog:
		v := DailyLogDetails{}
		err = decode(raw, &v)
		d = v
	case TypeSideStation:
		v := SideStationDetails{}
		err = decode(raw, &v)
		d = v
	case TypeWitness:
		v := WitnessDetails{}
		err = decode(raw, &v)
		d = v
	case TypeNotice:
		v := NoticeDetails{}
		err = decode(raw, &v)
		d = v
	case TypeMinutes:
		v := MinutesDetails{}
		err = decode(raw, &v)
		d = v
	case TypeMonthly:
		v := MonthlyDetails{}
		err = decode(raw, &v)
		d = v
	case TypeMajorEvent:
		v := MajorEventDetails{}
		err = decode(raw, &v)
		d = v
	default:
		return nil, ErrUnknownType
	}
	if err != nil {
		return d, err
	}
	return d, nil
}

func decode(raw []byte, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		// reset to zero value so a half-decoded payload never leaks out
		switch p := v.(type) {
		case *DailyLogDetails:
			*p = DailyLogDetails{}
		case *SideStationDetails:
			*p = SideStationDetails{}
		case *WitnessDetails:
			*p = WitnessDetails{}
		case *NoticeDetails:
			*p = NoticeDetails{}
		case *MinutesDetails:
			*p = MinutesDetails{}
		case *MonthlyDetails:
			*p = MonthlyDetails{}
		case *MajorEventDetails:
			*p = MajorEventDetails{}
		}
		return err
	}
	return nil
}
