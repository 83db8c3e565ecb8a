package sample

import "github.com/DhavalSuthar-24/kickstats/internal/stats"

type standingRow struct {
	team                                     string
	played, won, drawn, lost, gf, ga, points int
}

// 2022/23 Premier League final table as used by the demo. Some lines do not
// add up (W+D+L or 3W+D); stats.Check flags them.
var standingRows = []standingRow{
	{"Manchester City", 38, 28, 5, 5, 89, 31, 89},
	{"Arsenal", 38, 26, 6, 6, 88, 43, 84},
	{"Manchester United", 38, 23, 6, 9, 58, 43, 75},
	{"Newcastle United", 38, 19, 14, 5, 68, 33, 71},
	{"Liverpool", 38, 19, 10, 9, 75, 28, 67},
	{"Brighton", 38, 18, 8, 12, 72, 53, 62},
	{"Aston Villa", 38, 18, 7, 13, 61, 61, 61},
	{"Tottenham", 38, 18, 6, 14, 66, 40, 60},
	{"Brentford", 38, 15, 14, 9, 58, 46, 59},
	{"Fulham", 38, 16, 7, 15, 55, 53, 55},
	{"Crystal Palace", 38, 11, 12, 15, 40, 49, 45},
	{"Chelsea", 38, 12, 11, 15, 38, 47, 44},
	{"Wolves", 38, 13, 6, 19, 31, 58, 45},
	{"West Ham", 38, 14, 7, 17, 42, 58, 49},
	{"Leeds United", 38, 11, 10, 17, 48, 78, 43},
	{"Everton", 38, 13, 6, 19, 34, 57, 45},
	{"Nottingham Forest", 38, 9, 11, 18, 38, 68, 38},
	{"Leicester City", 38, 11, 7, 20, 51, 68, 40},
	{"Bournemouth", 38, 11, 9, 18, 37, 71, 42},
	{"Southampton", 38, 12, 6, 20, 36, 73, 42},
}

var teamStatsRows = []TeamStats{
	{Team: "Manchester City", LeaguePosition: 1, Points: 89, GoalsScored: 89, GoalsConceded: 31, CleanSheets: 17, PossessionPct: 67.2, PassAccuracyPct: 90.1, ShotsPerGame: 17.8, TacklesPerGame: 14.2},
	{Team: "Arsenal", LeaguePosition: 2, Points: 84, GoalsScored: 88, GoalsConceded: 43, CleanSheets: 14, PossessionPct: 59.8, PassAccuracyPct: 86.7, ShotsPerGame: 16.1, TacklesPerGame: 16.5},
	{Team: "Manchester United", LeaguePosition: 3, Points: 75, GoalsScored: 58, GoalsConceded: 43, CleanSheets: 13, PossessionPct: 56.4, PassAccuracyPct: 83.2, ShotsPerGame: 15.3, TacklesPerGame: 17.4},
	{Team: "Newcastle", LeaguePosition: 4, Points: 74, GoalsScored: 68, GoalsConceded: 33, CleanSheets: 19, PossessionPct: 52.1, PassAccuracyPct: 81.9, ShotsPerGame: 15.9, TacklesPerGame: 18.8},
	{Team: "Liverpool", LeaguePosition: 5, Points: 67, GoalsScored: 75, GoalsConceded: 28, CleanSheets: 21, PossessionPct: 61.7, PassAccuracyPct: 87.4, ShotsPerGame: 17.2, TacklesPerGame: 15.6},
	{Team: "Brighton", LeaguePosition: 6, Points: 62, GoalsScored: 72, GoalsConceded: 53, CleanSheets: 8, PossessionPct: 58.9, PassAccuracyPct: 84.6, ShotsPerGame: 14.8, TacklesPerGame: 16.9},
	{Team: "Aston Villa", LeaguePosition: 7, Points: 61, GoalsScored: 61, GoalsConceded: 51, CleanSheets: 9, PossessionPct: 54.2, PassAccuracyPct: 82.1, ShotsPerGame: 12.6, TacklesPerGame: 17.1},
	{Team: "Tottenham", LeaguePosition: 8, Points: 59, GoalsScored: 66, GoalsConceded: 40, CleanSheets: 12, PossessionPct: 55.8, PassAccuracyPct: 83.7, ShotsPerGame: 13.9, TacklesPerGame: 16.2},
}

var playerRows = []stats.PlayerRecord{
	{Name: "Lionel Messi", Team: "PSG", Goals: 30, Assists: 15, MatchesPlayed: 35},
	{Name: "Cristiano Ronaldo", Team: "Al Nassr", Goals: 28, Assists: 8, MatchesPlayed: 32},
	{Name: "Kylian Mbappé", Team: "PSG", Goals: 35, Assists: 12, MatchesPlayed: 38},
	{Name: "Erling Haaland", Team: "Man City", Goals: 42, Assists: 10, MatchesPlayed: 40},
	{Name: "Neymar Jr", Team: "Al Hilal", Goals: 25, Assists: 18, MatchesPlayed: 30},
}

// ID and Date are filled in by Static.Fixtures.
var fixtureRows = []Fixture{
	{HomeTeam: "Manchester City", AwayTeam: "Liverpool", HomeWinProb: 65, DrawProb: 20, AwayWinProb: 15, PredictedHomeScore: 2, PredictedAwayScore: 1},
	{HomeTeam: "Arsenal", AwayTeam: "Chelsea", HomeWinProb: 58, DrawProb: 25, AwayWinProb: 17, PredictedHomeScore: 1, PredictedAwayScore: 1},
	{HomeTeam: "Liverpool", AwayTeam: "Manchester United", HomeWinProb: 72, DrawProb: 18, AwayWinProb: 10, PredictedHomeScore: 3, PredictedAwayScore: 0},
	{HomeTeam: "Chelsea", AwayTeam: "Tottenham", HomeWinProb: 45, DrawProb: 30, AwayWinProb: 25, PredictedHomeScore: 1, PredictedAwayScore: 1},
	{HomeTeam: "Manchester United", AwayTeam: "Newcastle", HomeWinProb: 55, DrawProb: 25, AwayWinProb: 20, PredictedHomeScore: 2, PredictedAwayScore: 1},
	{HomeTeam: "Tottenham", AwayTeam: "Brighton", HomeWinProb: 62, DrawProb: 22, AwayWinProb: 16, PredictedHomeScore: 2, PredictedAwayScore: 1},
	{HomeTeam: "Newcastle", AwayTeam: "Aston Villa", HomeWinProb: 48, DrawProb: 28, AwayWinProb: 24, PredictedHomeScore: 1, PredictedAwayScore: 1},
	{HomeTeam: "Brighton", AwayTeam: "West Ham", HomeWinProb: 60, DrawProb: 22, AwayWinProb: 18, PredictedHomeScore: 2, PredictedAwayScore: 0},
	{HomeTeam: "Aston Villa", AwayTeam: "Crystal Palace", HomeWinProb: 52, DrawProb: 26, AwayWinProb: 22, PredictedHomeScore: 1, PredictedAwayScore: 1},
	{HomeTeam: "West Ham", AwayTeam: "Fulham", HomeWinProb: 46, DrawProb: 29, AwayWinProb: 25, PredictedHomeScore: 1, PredictedAwayScore: 1},
}
