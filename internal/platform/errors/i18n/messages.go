package i18n

// Codes duplicated from the errors package, which imports this one.
const (
	CodeAttackerMissing = "CHASE_ATTACKER_MISSING"
	CodeTargetMissing   = "CHASE_TARGET_MISSING"
	CodeInvalidMethod   = "CHASE_INVALID_METHOD"
	CodeInvalidVehicle  = "CHASE_INVALID_VEHICLE"
	CodeSameVehicle     = "CHASE_SAME_VEHICLE"
	CodeCountOutOfRange = "CHASE_COUNT_OUT_OF_RANGE"
	CodeVehicleNotFound = "CHASE_VEHICLE_NOT_FOUND"
	CodeRosterInvalid   = "CHASE_ROSTER_INVALID"
	CodeDiceMissing     = "DICE_MISSING"
	CodeDiceInvalidSpec = "DICE_INVALID_SPEC"
	CodeSeedOutOfRange  = "SEED_OUT_OF_RANGE"
)

var enUS = map[Code]string{
	CodeAttackerMissing: "An attacking vehicle is required.",
	CodeTargetMissing:   "A target vehicle is required.",
	CodeInvalidMethod:   "{{.Method}} is not a chase maneuver.",
	CodeInvalidVehicle:  "The {{.Field}} vehicle could not be read.",
	CodeSameVehicle:     "A vehicle cannot attack itself.",
	CodeCountOutOfRange: "The mook count must be between 0 and {{.Max}}.",
	CodeVehicleNotFound: "No vehicle {{.VehicleID}} in the roster.",
	CodeRosterInvalid:   "The vehicle roster could not be loaded.",
	CodeDiceMissing:     "At least one die is required.",
	CodeDiceInvalidSpec: "Invalid dice specification.",
	CodeSeedOutOfRange:  "The seed is out of range.",
}

var ptBR = map[Code]string{
	CodeAttackerMissing: "É necessário um veículo atacante.",
	CodeTargetMissing:   "É necessário um veículo alvo.",
	CodeInvalidMethod:   "{{.Method}} não é uma manobra de perseguição.",
	CodeInvalidVehicle:  "Não foi possível ler o veículo {{.Field}}.",
	CodeSameVehicle:     "Um veículo não pode atacar a si mesmo.",
	CodeCountOutOfRange: "O número de capangas deve estar entre 0 e {{.Max}}.",
	CodeVehicleNotFound: "Nenhum veículo {{.VehicleID}} na lista.",
	CodeRosterInvalid:   "Não foi possível carregar a lista de veículos.",
	CodeDiceMissing:     "É necessário pelo menos um dado.",
	CodeDiceInvalidSpec: "Especificação de dados inválida.",
	CodeSeedOutOfRange:  "A semente está fora do intervalo.",
}
