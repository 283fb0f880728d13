package catalog

import "github.com/omarshaarawi/playbook/internal/models"

func s(label, position string, dx, dy float64) models.FormationSlot {
	return models.FormationSlot{Label: label, Position: position, DX: dx, DY: dy}
}

// offensiveLine is the five-man front shared by every offensive formation.
var offensiveLine = []models.FormationSlot{
	s("LT", "LT", -60, 12),
	s("LG", "LG", -30, 12),
	s("C", "C", 0, 12),
	s("RG", "RG", 30, 12),
	s("RT", "RT", 60, 12),
}

func withLine(skill ...models.FormationSlot) []models.FormationSlot {
	return append(append([]models.FormationSlot{}, offensiveLine...), skill...)
}

var offenseFormations = []models.Formation{
	{Name: "I-Formation", ODK: models.ODKOffense, Side: models.SideOffense, Slots: withLine(
		s("X", "WR", -250, 12),
		s("Z", "WR", 250, 25),
		s("Y", "TE", 90, 12),
		s("QB", "QB", 0, 30),
		s("F", "FB", 0, 60),
		s("T", "TB", 0, 90),
	)},
	{Name: "Singleback", ODK: models.ODKOffense, Side: models.SideOffense, Slots: withLine(
		s("X", "WR", -250, 12),
		s("Z", "WR", 250, 25),
		s("H", "WR", -180, 25),
		s("Y", "TE", 90, 12),
		s("QB", "QB", 0, 30),
		s("RB", "RB", 0, 80),
	)},
	{Name: "Shotgun", ODK: models.ODKOffense, Side: models.SideOffense, Slots: withLine(
		s("X", "WR", -250, 12),
		s("Z", "WR", 250, 12),
		s("H", "WR", -170, 25),
		s("S", "WR", 170, 25),
		s("QB", "QB", 0, 70),
		s("RB", "RB", 40, 70),
	)},
	{Name: "Pistol", ODK: models.ODKOffense, Side: models.SideOffense, Slots: withLine(
		s("X", "WR", -250, 12),
		s("Z", "WR", 250, 25),
		s("Y", "TE", 90, 12),
		s("H", "TE", -90, 25),
		s("QB", "QB", 0, 55),
		s("RB", "RB", 0, 90),
	)},
	{Name: "Trips Right", ODK: models.ODKOffense, Side: models.SideOffense, Slots: withLine(
		s("X", "WR", -250, 12),
		s("Z", "WR", 250, 12),
		s("S", "WR", 200, 25),
		s("H", "WR", 150, 25),
		s("QB", "QB", 0, 70),
		s("RB", "RB", -40, 70),
	)},
	{Name: "Empty", ODK: models.ODKOffense, Side: models.SideOffense, Slots: withLine(
		s("X", "WR", -250, 12),
		s("Z", "WR", 250, 12),
		s("H", "WR", -190, 25),
		s("S", "WR", 190, 25),
		s("F", "RB", 130, 25),
		s("QB", "QB", 0, 70),
	)},
	{Name: "Pro Set", ODK: models.ODKOffense, Side: models.SideOffense, Slots: withLine(
		s("X", "WR", -250, 12),
		s("Z", "WR", 250, 25),
		s("Y", "TE", 90, 12),
		s("QB", "QB", 0, 30),
		s("H", "HB", -40, 75),
		s("F", "FB", 40, 75),
	)},
}

var defenseFormations = []models.Formation{
	{Name: "4-3 Base", ODK: models.ODKDefense, Side: models.SideDefense, Slots: []models.FormationSlot{
		s("E", "DE", -75, -12),
		s("T", "DT", -20, -12),
		s("N", "DT", 20, -12),
		s("E", "DE", 75, -12),
		s("W", "OLB", -80, -60),
		s("M", "MLB", 0, -60),
		s("S", "OLB", 80, -60),
		s("C", "CB", -250, -40),
		s("C", "CB", 250, -40),
		s("FS", "FS", -60, -150),
		s("SS", "SS", 70, -120),
	}},
	{Name: "3-4 Base", ODK: models.ODKDefense, Side: models.SideDefense, Slots: []models.FormationSlot{
		s("E", "DE", -50, -12),
		s("N", "NT", 0, -12),
		s("E", "DE", 50, -12),
		s("J", "OLB", -100, -20),
		s("W", "ILB", -25, -60),
		s("M", "ILB", 25, -60),
		s("S", "OLB", 100, -20),
		s("C", "CB", -250, -40),
		s("C", "CB", 250, -40),
		s("FS", "FS", -60, -150),
		s("SS", "SS", 70, -120),
	}},
	{Name: "Nickel", ODK: models.ODKDefense, Side: models.SideDefense, Slots: []models.FormationSlot{
		s("E", "DE", -75, -12),
		s("T", "DT", -20, -12),
		s("N", "DT", 20, -12),
		s("E", "DE", 75, -12),
		s("W", "LB", -25, -60),
		s("M", "LB", 25, -60),
		s("C", "CB", -250, -40),
		s("C", "CB", 250, -40),
		s("N", "NB", 170, -50),
		s("FS", "FS", -70, -150),
		s("SS", "SS", 70, -150),
	}},
	{Name: "Dime", ODK: models.ODKDefense, Side: models.SideDefense, Slots: []models.FormationSlot{
		s("E", "DE", -75, -12),
		s("T", "DT", -20, -12),
		s("N", "DT", 20, -12),
		s("E", "DE", 75, -12),
		s("M", "MLB", 0, -60),
		s("C", "CB", -250, -40),
		s("C", "CB", 250, -40),
		s("N", "NB", 170, -50),
		s("D", "DB", -170, -50),
		s("FS", "FS", -70, -150),
		s("SS", "SS", 70, -150),
	}},
	{Name: "46 Bear", ODK: models.ODKDefense, Side: models.SideDefense, Slots: []models.FormationSlot{
		s("E", "DE", -75, -12),
		s("T", "DT", -30, -12),
		s("N", "NT", 0, -12),
		s("T", "DT", 30, -12),
		s("E", "DE", 75, -12),
		s("S", "OLB", 105, -20),
		s("M", "MLB", -30, -60),
		s("SS", "SS", 30, -60),
		s("C", "CB", -250, -40),
		s("C", "CB", 250, -40),
		s("FS", "FS", 0, -150),
	}},
}

// Kicking units render as offense and return units as defense.
var specialTeamsFormations = []models.Formation{
	{Name: "Punt", ODK: models.ODKSpecialTeam, Side: models.SideOffense, Slots: []models.FormationSlot{
		s("LS", "LS", 0, 12),
		s("LG", "LG", -30, 12),
		s("RG", "RG", 30, 12),
		s("LT", "LT", -60, 12),
		s("RT", "RT", 60, 12),
		s("LW", "W", -80, 25),
		s("RW", "W", 80, 25),
		s("G", "GUN", -250, 12),
		s("G", "GUN", 250, 12),
		s("PP", "PP", 0, 70),
		s("P", "P", 0, 150),
	}},
	{Name: "Field Goal", ODK: models.ODKSpecialTeam, Side: models.SideOffense, Slots: []models.FormationSlot{
		s("LS", "LS", 0, 12),
		s("LG", "LG", -30, 12),
		s("RG", "RG", 30, 12),
		s("LT", "LT", -60, 12),
		s("RT", "RT", 60, 12),
		s("LE", "TE", -90, 12),
		s("RE", "TE", 90, 12),
		s("LW", "W", -110, 25),
		s("RW", "W", 110, 25),
		s("H", "H", -15, 85),
		s("K", "K", -35, 110),
	}},
	{Name: "Kickoff", ODK: models.ODKSpecialTeam, Side: models.SideOffense, Slots: []models.FormationSlot{
		s("L5", "KC", -300, 8),
		s("L4", "KC", -240, 8),
		s("L3", "KC", -180, 8),
		s("L2", "KC", -120, 8),
		s("L1", "KC", -60, 8),
		s("K", "K", 0, 40),
		s("R1", "KC", 60, 8),
		s("R2", "KC", 120, 8),
		s("R3", "KC", 180, 8),
		s("R4", "KC", 240, 8),
		s("R5", "KC", 300, 8),
	}},
	{Name: "Punt Return", ODK: models.ODKSpecialTeam, Side: models.SideDefense, Slots: []models.FormationSlot{
		s("J", "JAM", -250, -12),
		s("E", "DE", -75, -12),
		s("T", "DT", -25, -12),
		s("T", "DT", 25, -12),
		s("E", "DE", 75, -12),
		s("R", "R", -120, -12),
		s("R", "R", 120, -12),
		s("J", "JAM", 250, -12),
		s("L", "LB", -40, -50),
		s("L", "LB", 40, -50),
		s("PR", "PR", 0, -180),
	}},
	{Name: "Kick Return", ODK: models.ODKSpecialTeam, Side: models.SideDefense, Slots: []models.FormationSlot{
		s("F1", "R", -200, -60),
		s("F2", "R", -100, -60),
		s("F3", "R", 0, -60),
		s("F4", "R", 100, -60),
		s("F5", "R", 200, -60),
		s("W1", "R", -150, -110),
		s("W2", "R", -50, -110),
		s("W3", "R", 50, -110),
		s("W4", "R", 150, -110),
		s("KR", "KR", -40, -170),
		s("KR", "KR", 40, -170),
	}},
}
