package bref

// Canonical column orderings. Every extraction ends with a reindex to
// one of these lists so that columns a given page never produced still
// appear, null-filled, and downstream consumers see a stable schema
// across eras.

var gameInfoCols = []string{
	"Game", "Game ID", "Game Type", "Date", "Day of Week", "Start Time",
	"Venue", "Attendance", "Duration", "Surface", "Field Condition",
	"Temperature", "Weather", "Wind Speed", "Wind Direction", "Precipitation",
	"Innings",
	"Away Team", "Away Team ID", "Away Score",
	"Home Team", "Home Team ID", "Home Score",
	"Winning Team", "Losing Team",
	"HP Ump", "1B Ump", "2B Ump", "3B Ump", "LF Ump", "RF Ump",
}

var gameTeamInfoCols = []string{
	"Game ID", "Home/Away", "Team", "Team ID", "Score", "Result",
	"Record", "Previous Game ID", "Next Game ID",
}

var gameBattingCols = []string{
	"Player", "Player ID", "Position",
	"AB", "R", "H", "RBI", "BB", "SO", "PA",
	"BA", "OBP", "SLG", "OPS",
	"Pit", "Str",
	"WPA", "aLI", "WPA+", "WPA-", "cWPA", "acLI", "RE24",
	"2B", "3B", "HR", "SB", "CS", "SF", "SH", "HBP", "GDP", "IBB",
	"TB", "2-Out RBI", "LOB", "RISP",
	"2B SB", "3B SB", "HP SB", "2B CS", "3B CS", "HP CS",
	"Pick", "1B Pick", "2B Pick", "3B Pick",
	"Team", "Team ID", "Opponent", "Opponent Team ID",
	"Team Score", "Result for Team", "Home/Away", "Game ID",
}

var gamePitchingCols = []string{
	"Player", "Player ID", "Position",
	"IP", "H", "R", "ER", "BB", "SO", "HR", "ERA", "BF",
	"Pit", "Str", "Ctct", "StS", "StL", "GB", "FB", "LD", "Unk",
	"GSc", "IR", "IS",
	"WPA", "aLI", "cWPA", "acLI", "RE24",
	"GS", "GF", "CG", "SHO",
	"W", "L", "SV", "BS", "Holds",
	"Balks", "WP", "HBP", "IBB",
	"NH", "PG", "CNH",
	"Team", "Team ID", "Opponent", "Opponent Team ID",
	"Team Score", "Result for Team", "Home/Away", "Game ID",
}

var gameFieldingCols = []string{
	"Player", "Player ID", "Position",
	"PO", "A", "E", "DP", "TP", "OFA", "PB",
	"SB", "2B SB", "3B SB", "HP SB",
	"CS", "2B CS", "3B CS", "HP CS",
	"Pick", "1B Pick", "2B Pick", "3B Pick",
	"Team", "Team ID", "Opponent", "Opponent Team ID",
	"Team Score", "Result for Team", "Home/Away", "Game ID",
}

// battingFieldingCols are the batting columns that move to the
// fielding table after the box score is parsed.
var battingFieldingCols = []string{"PO", "A", "E", "DP", "TP", "OFA", "PB"}

var playerInfoCols = []string{
	"Player ID", "Player", "Full Name", "bWAR",
	"Batting Hand", "Throwing Hand", "Height (in.)", "Weight (lbs.)",
	"Birth Date", "Birth City", "Birth State/Province", "Birth Country",
	"Age", "Age (Days)",
	"Death Date", "Age At Death", "Age At Death (Days)",
	"Death City", "Death State/Province", "Death Country",
	"Draft Team", "Draft Round", "Draft Pick", "Draft Year", "Draft Type",
	"High Schools", "Colleges",
	"Debut Date", "Debut Age", "Debut Age (Days)", "Debut Game ID", "Debut Rank",
	"Last Game", "Last Game Age", "Last Game Age (Days)", "Last Game ID",
	"Exceeded Rookie Limits",
	"HOF Year", "HOF Type", "HOF %",
	"Minimum Career Earnings",
	"Years Played", "Teams Played For", "Most Teams in a Year",
}

// blingCounterCols are zeroed before the accolade banner is read so an
// unadorned player still gets explicit zeros.
var blingCounterCols = []string{
	"All-Star", "MVPs", "Cy Youngs", "RoY",
	"Gold Gloves", "Silver Sluggers",
	"WS Wins", "WS MVPs", "LCS MVPs",
}

var playerBlingCols = append([]string{"Player ID", "Player"}, blingCounterCols...)

var playerBattingCols = []string{
	"Player ID", "Player", "Season", "Age", "Team", "Team ID", "League", "Game Type",
	"G", "PA", "AB", "R", "H", "2B", "3B", "HR", "RBI", "SB", "CS",
	"BB", "SO", "BA", "OBP", "SLG", "OPS", "OPS+", "rOBA", "Rbat+",
	"TB", "GIDP", "HBP", "SH", "SF", "IBB", "Pos",
	"Awards", "AS", "GG", "SS", "LCS MVP", "WS MVP",
	"MVP Finish", "CYA Finish", "ROY Finish",
	"Batting bWAR",
	"Rbat", "Rbaser", "Rdp", "Rfield", "Rpos", "RAA", "WAA", "Rrep", "RAR",
	"waaWL%", "162WL%", "oWAR", "dWAR", "oRAR",
	"BAbip", "ISO", "HR%", "SO%", "BB%",
	"EV", "HardH%", "LD%", "GB%", "FB%", "GB/FB",
	"Pull%", "Cent%", "Oppo%",
	"WPA", "cWPA", "RE24", "RS%", "SB%", "XBT%",
	"Salary",
}

var playerPitchingCols = []string{
	"Player ID", "Player", "Season", "Age", "Team", "Team ID", "League", "Game Type",
	"W", "L", "W-L%", "ERA", "G", "GS", "GF", "CG", "SHO", "SV",
	"IP", "H", "R", "ER", "HR", "BB", "IBB", "SO", "HBP", "BK", "WP", "BF",
	"ERA+", "FIP", "WHIP", "H9", "HR9", "BB9", "SO9", "SO/BB",
	"Awards", "AS", "GG", "SS", "LCS MVP", "WS MVP",
	"MVP Finish", "CYA Finish", "ROY Finish",
	"Pitching bWAR",
	"RA9", "RA9opp", "RA9def", "RA9role", "PPFp", "RA9avg",
	"RAA", "WAA", "WAAadj", "Rrep", "RAR", "waaWL%", "162WL%", "gmLI",
	"BA", "OBP", "SLG", "OPS", "BAbip", "HR%", "SO%", "BB%",
	"EV", "HardH%", "LD%", "GB%", "FB%", "GB/FB",
	"WPA", "cWPA", "RE24",
	"NH", "PG", "CNH",
	"Salary",
}

var playerFieldingCols = []string{
	"Player ID", "Player", "Season", "Age", "Team", "Team ID", "League", "Game Type", "Position",
	"G", "GS", "CG", "Inn", "Ch", "PO", "A", "E", "DP", "Fld%",
	"Rtot", "Rtot/yr", "Rdrs", "Rdrs/yr", "Rgood", "RF/9", "RF/G",
	"PB", "WP", "SB", "CS", "CS%", "lgCS%", "Pick",
	"Awards", "AS", "GG", "SS", "LCS MVP", "WS MVP",
	"MVP Finish", "CYA Finish", "ROY Finish",
	"Salary",
}

var teamInfoCols = []string{
	"Team ID", "Team", "Season",
	"Wins", "Losses", "Ties", "Division Finish", "Division",
	"Postseason Finish",
	"Pythagorean Wins", "Pythagorean Losses",
	"Managers", "President", "General Manager",
	"Farm Director", "Scouting Director",
	"Venue", "Attendance", "Attendance Rank",
	"Multi-Year Batting Park Factor", "Multi-Year Pitching Park Factor",
	"One-Year Batting Park Factor", "One-Year Pitching Park Factor",
	"Team Gold Glove", "Pennant", "World Series",
}

var teamBattingCols = []string{
	"Player", "Player ID", "Age", "Position",
	"G", "PA", "AB", "R", "H", "2B", "3B", "HR", "RBI", "SB", "CS",
	"BB", "SO", "BA", "OBP", "SLG", "OPS", "OPS+", "rOBA", "Rbat+",
	"TB", "GIDP", "HBP", "SH", "SF", "IBB", "Pos",
	"Awards", "AS", "GG", "SS", "LCS MVP", "WS MVP",
	"MVP Finish", "CYA Finish", "ROY Finish",
	"Batting bWAR",
	"Rbat", "Rbaser", "Rdp", "Rfield", "Rpos", "RAA", "WAA", "Rrep", "RAR",
	"waaWL%", "162WL%", "oWAR", "dWAR", "oRAR", "Salary",
	"Game Type", "Season", "Team", "Team ID",
}

var teamPitchingCols = []string{
	"Player", "Player ID", "Age",
	"W", "L", "W-L%", "ERA", "G", "GS", "GF", "CG", "SHO", "SV",
	"IP", "H", "R", "ER", "HR", "BB", "IBB", "SO", "HBP", "BK", "WP", "BF",
	"ERA+", "FIP", "WHIP", "H9", "HR9", "BB9", "SO9", "SO/BB",
	"Awards", "AS", "GG", "SS", "LCS MVP", "WS MVP",
	"MVP Finish", "CYA Finish", "ROY Finish",
	"Pitching bWAR",
	"RA9", "RA9opp", "RA9def", "RA9role", "PPFp", "RA9avg",
	"RAA", "WAA", "WAAadj", "Rrep", "RAR", "waaWL%", "162WL%", "gmLI", "Salary",
	"NH", "PG", "CNH",
	"Game Type", "Season", "Team", "Team ID",
}

var teamFieldingCols = []string{
	"Player", "Player ID", "Age", "Position",
	"G", "GS", "CG", "Inn", "Ch", "PO", "A", "E", "DP", "Fld%",
	"Rtot", "Rtot/yr", "Rdrs", "Rdrs/yr", "Rgood", "RF/9", "RF/G",
	"PB", "WP", "SB", "CS", "CS%", "lgCS%", "Pick", "Pos",
	"Awards", "AS", "GG", "SS", "LCS MVP", "WS MVP",
	"MVP Finish", "CYA Finish", "ROY Finish",
	"Game Type", "Season", "Team", "Team ID",
}
