package http

import "taskflow-pro/internal/model"

type changeReq struct {
	Tier string `json:"tier" binding:"required"`
}

type tierResp struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	MaxTasks int      `json:"max_tasks"`
	Features []string `json:"features"`
	Perks    []string `json:"perks"`
	Locked   []string `json:"locked"`
}

func newTierResp(info model.TierInfo) tierResp {
	features := make([]string, len(info.Features))
	for i, f := range info.Features {
		features[i] = string(f)
	}
	return tierResp{
		ID:       string(info.ID),
		Name:     info.Name,
		Price:    info.Price,
		MaxTasks: info.MaxTasks,
		Features: features,
		Perks:    info.Perks,
		Locked:   info.Locked,
	}
}

type tiersResp struct {
	Tiers   []tierResp `json:"tiers"`
	Current string     `json:"current"`
}

func newTiersResp(tiers []model.TierInfo, current model.TierInfo) tiersResp {
	out := tiersResp{Tiers: make([]tierResp, len(tiers)), Current: string(current.ID)}
	for i, t := range tiers {
		out.Tiers[i] = newTierResp(t)
	}
	return out
}
