package domain

// SimulationType tells which kind of armor damage a case simulates.
type SimulationType int

const (
	KineticPenetration SimulationType = 1
	ShapedCharge       SimulationType = 2
	ExplosiveImpact    SimulationType = 3
)

// SimulationStatus is the lifecycle state of the case computation.
type SimulationStatus int

const (
	StatusNotCalculated SimulationStatus = 0
	StatusCalculating   SimulationStatus = 1
	StatusCompleted     SimulationStatus = 2
	StatusError         SimulationStatus = 3
	StatusCancelled     SimulationStatus = 4
	StatusPaused        SimulationStatus = 5
)

const UnknownTypeDisplayName = "Unknown Type"
const UnknownStatusDisplayName = "Unknown Status"

var simulationTypeNames = map[SimulationType]string{
	KineticPenetration: "KineticPenetration",
	ShapedCharge:       "ShapedCharge",
	ExplosiveImpact:    "ExplosiveImpact",
}

var simulationTypeDisplayNames = map[SimulationType]string{
	KineticPenetration: "Kinetic Penetration",
	ShapedCharge:       "Shaped Charge",
	ExplosiveImpact:    "Explosive Impact",
}

var simulationStatusNames = map[SimulationStatus]string{
	StatusNotCalculated: "NotCalculated",
	StatusCalculating:   "Calculating",
	StatusCompleted:     "Completed",
	StatusError:         "Error",
	StatusCancelled:     "Cancelled",
	StatusPaused:        "Paused",
}

var simulationStatusDisplayNames = map[SimulationStatus]string{
	StatusNotCalculated: "Not Calculated",
	StatusCalculating:   "Calculating",
	StatusCompleted:     "Completed",
	StatusError:         "Calculation Error",
	StatusCancelled:     "Cancelled",
	StatusPaused:        "Paused",
}

func (t SimulationType) IsValid() bool {
	_, found := simulationTypeNames[t]
	return found
}

func (t SimulationType) DisplayName() string {
	if name, found := simulationTypeDisplayNames[t]; found {
		return name
	}
	return UnknownTypeDisplayName
}

func (s SimulationStatus) IsValid() bool {
	_, found := simulationStatusNames[s]
	return found
}

func (s SimulationStatus) DisplayName() string {
	if name, found := simulationStatusDisplayNames[s]; found {
		return name
	}
	return UnknownStatusDisplayName
}

// EnumItem is the value/name/display triple consumed by UI pickers.
type EnumItem struct {
	Value       int    `json:"value"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

func SimulationTypeItems() []EnumItem {
	types := []SimulationType{KineticPenetration, ShapedCharge, ExplosiveImpact}
	items := make([]EnumItem, 0, len(types))
	for _, t := range types {
		items = append(items, EnumItem{Value: int(t), Name: simulationTypeNames[t], DisplayName: t.DisplayName()})
	}
	return items
}

func SimulationStatusItems() []EnumItem {
	statuses := []SimulationStatus{StatusNotCalculated, StatusCalculating, StatusCompleted,
		StatusError, StatusCancelled, StatusPaused}
	items := make([]EnumItem, 0, len(statuses))
	for _, s := range statuses {
		items = append(items, EnumItem{Value: int(s), Name: simulationStatusNames[s], DisplayName: s.DisplayName()})
	}
	return items
}
