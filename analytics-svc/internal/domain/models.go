package domain

type SearchStat struct {
	Query    string `json:"query"`
	Searches int64  `json:"searches"`
}

type SummaryResponse struct {
	MostSearchedToday    *SearchStat `json:"most_searched_today,omitempty"`
	MostSearchedAllTime  *SearchStat `json:"most_searched_all_time,omitempty"`
	MostSearchedMenuType *SearchStat `json:"most_searched_menu_type,omitempty"`
	MostUnmatched        *SearchStat `json:"most_unmatched,omitempty"`
}
