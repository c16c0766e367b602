package postgres

import "github.com/oddsforge/matchdna/internal/domain/playerprofile"

type playerAggregateTableModel struct {
	ID          int64   `db:"id"`
	PlayerName  string  `db:"player_name"`
	Team        string  `db:"team"`
	League      string  `db:"league"`
	Position    string  `db:"position"`
	Goals       int     `db:"goals"`
	NPG         int     `db:"npg"`
	XG          float64 `db:"xg"`
	NPXG        float64 `db:"npxg"`
	Assists     int     `db:"assists"`
	XA          float64 `db:"xa"`
	Shots       int     `db:"shots"`
	Minutes     int     `db:"minutes"`
	Games       int     `db:"games"`
	XGChain     float64 `db:"xg_chain"`
	XGBuildup   float64 `db:"xg_buildup"`
	KeyPasses   int     `db:"key_passes"`
	YellowCards int     `db:"yellow_cards"`
	RedCards    int     `db:"red_cards"`
}

func (m playerAggregateTableModel) toDomain() playerprofile.RawPlayer {
	return playerprofile.RawPlayer{
		PlayerName:  m.PlayerName,
		Team:        m.Team,
		League:      m.League,
		Position:    m.Position,
		Goals:       m.Goals,
		NPG:         m.NPG,
		XG:          m.XG,
		NPXG:        m.NPXG,
		Assists:     m.Assists,
		XA:          m.XA,
		Shots:       m.Shots,
		Minutes:     m.Minutes,
		Games:       m.Games,
		XGChain:     m.XGChain,
		XGBuildup:   m.XGBuildup,
		KeyPasses:   m.KeyPasses,
		YellowCards: m.YellowCards,
		RedCards:    m.RedCards,
	}
}
