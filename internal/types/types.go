package types

// TiersResp 段位标签页，按声明顺序
type TiersResp struct {
	List []TierItem `json:"list"`
}

// TierItem 段位说明
// Unbounded 为 true 时表示不设定员
type TierItem struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Capacity     int    `json:"capacity"`
	Unbounded    bool   `json:"unbounded"`
	PromoteTop   int    `json:"promoteTop"`
	DemoteBottom int    `json:"demoteBottom"`
	Window       string `json:"window"`
}

type StandingsReq struct {
	Tier   string `form:"tier"`
	Period string `form:"period,default=previous"`
}

// StandingsResp 某段位某周期的展示列表
// 名次与区域按完整列表计算，List 只是展示窗口
type StandingsResp struct {
	Tier         string        `json:"tier"`
	Label        string        `json:"label"`
	Period       string        `json:"period"`
	NoData       bool          `json:"noData"`
	Total        int           `json:"total"`
	Window       string        `json:"window"`
	PromoteAfter int           `json:"promoteAfter,omitempty"`
	DemoteFrom   int           `json:"demoteFrom,omitempty"`
	List         []StandingRow `json:"list"`
}

type StandingRow struct {
	Position   int     `json:"position"`
	ID         string  `json:"id"`
	IconURL    string  `json:"iconUrl,omitempty"`
	Points     int64   `json:"points"`
	Diamonds   int64   `json:"diamonds"`
	Days       float64 `json:"days"`
	Hours      float64 `json:"hours"`
	BonusLevel int     `json:"bonusLevel"`
	Multiplier float64 `json:"multiplier"`
	Zone       string  `json:"zone"`
	Eligible   bool    `json:"eligible"`
	Badge      string  `json:"badge,omitempty"`
}

type DetailReq struct {
	ID       string `form:"id"`
	Period   string `form:"period,default=previous"`
	Fallback bool   `form:"fallback,default=false"`
}

// DetailResp 单个主播的详情
type DetailResp struct {
	ID         string         `json:"id"`
	IconURL    string         `json:"iconUrl,omitempty"`
	Tier       string         `json:"tier"`
	TierLabel  string         `json:"tierLabel"`
	Period     string         `json:"period"`
	Position   int            `json:"position"`
	Total      int            `json:"total"`
	Points     int64          `json:"points"`
	Diamonds   int64          `json:"diamonds"`
	LiveMatch  int64          `json:"liveMatch"`
	Days       float64        `json:"days"`
	Hours      float64        `json:"hours"`
	Eligible   bool           `json:"eligible"`
	Zone       string         `json:"zone"`
	BonusLevel int            `json:"bonusLevel"`
	Multiplier float64        `json:"multiplier"`
	Next       ProjectionItem `json:"next"`
}

// ProjectionItem 距下一档奖励的进度，Terminal 为 true 时其余字段无意义
type ProjectionItem struct {
	CurrentLevel             int     `json:"currentLevel"`
	NextLevel                int     `json:"nextLevel,omitempty"`
	Terminal                 bool    `json:"terminal"`
	NextMinDays              float64 `json:"nextMinDays,omitempty"`
	NextMinHours             float64 `json:"nextMinHours,omitempty"`
	RemainingDays            float64 `json:"remainingDays"`
	RemainingHours           float64 `json:"remainingHours"`
	DayRatio                 float64 `json:"dayRatio"`
	HourRatio                float64 `json:"hourRatio"`
	RemainingDiamondsToFloor int64   `json:"remainingDiamondsToFloor"`
}

type SearchReq struct {
	Q      string `form:"q"`
	Period string `form:"period,default=previous"`
}

type SearchResp struct {
	ID     string `json:"id"`
	Tier   string `json:"tier"`
	Period string `json:"period"`
	Match  string `json:"match"`
}
