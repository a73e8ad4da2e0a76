package adoptions

import "time"

// Answers son las respuestas del cuestionario público de adopción.
// Las preguntas Sim/Não son *bool: nil se muestra como "—".
type Answers struct {
	Name                string `json:"nome"`
	CPF                 string `json:"cpf"`
	Age                 int    `json:"idade"`
	Occupation          string `json:"ocupacao_profissional"`
	Email               string `json:"email"`
	FinancialConditions *bool  `json:"condicoes_financeiras"`

	Street   string `json:"rua"`
	Number   string `json:"numero"`
	District string `json:"bairro"`
	City     string `json:"cidade"`
	CEP      string `json:"cep"`

	Instagram string `json:"instagram"`
	Phone     string `json:"numero_contato"`

	// Bloque "outros animais": solo cuenta cuando OtherAnimals es true.
	OtherAnimals            bool   `json:"animal_externo"`
	OtherAnimalsOutings     *bool  `json:"animal_externo_voltinhas"`
	OtherAnimalsSpeciesAge  string `json:"animal_externo_especie_idade"`
	OtherAnimalsNotNeutered *bool  `json:"animal_externo_nao_castrado"`
	OtherAnimalsVaccinated  *bool  `json:"animal_externo_vacinacao"`
	OtherAnimalsTested      *bool  `json:"animal_externo_testado"`
	OtherAnimalsFood        string `json:"animal_externo_racao"`

	AdaptationPeriod *bool `json:"periodo_adaptacao"`

	LivesAlone        *bool `json:"mora_sozinho"`
	LivesWithChildren *bool `json:"mora_crianca"`
	SomeoneDisagrees  *bool `json:"alguem_nao_concorda"`
	SomeoneAllergic   *bool `json:"alguem_alergico"`
	OwnsHome          *bool `json:"imovel_proprio"`

	// LivesInHouse elige entre el bloque casa y el bloque apartamento.
	LivesInHouse      bool  `json:"mora_casa"`
	HouseLowWalls     *bool `json:"casa_muros_laterais_baixos"`
	HouseYard         *bool `json:"casa_quintal"`
	HouseSharedYard   *bool `json:"casa_quintal_mais_casa"`
	HouseGarage       *bool `json:"casa_garagem"`
	ApartmentScreened *bool `json:"apartamento_telada"`
	ApartmentLimiter  *bool `json:"apartamento_limitador"`

	MovingForWork      *bool `json:"mudanca_trabalho"`
	MovingHome         *bool `json:"mudanca_imovel"`
	MovingHomeScreened *bool `json:"mudanca_imovel_seguranca"`
	MovingNotifyDonor  *bool `json:"mudanca_imovel_comunicar"`

	NoRehoming        *bool  `json:"repassar_animal"`
	GiveUpNotice      *bool  `json:"desistencia"`
	TravelCaretaker   string `json:"viagens"`
	Restricted        *bool  `json:"restrito"`
	GaveUpBefore      bool   `json:"devolver_doar"`
	GaveUpExplanation string `json:"devolver_doar_explique"`
	RespondDonor      *bool  `json:"responder_doador"`
}

// Application es una solicitud de adopción enviada por el sitio.
type Application struct {
	ID      uint
	CatID   uint
	CatName string
	Answers

	CreatedAt time.Time
}

// Adopted marca una adopción concluida. Existe a lo sumo uno por gato.
type Adopted struct {
	ID            uint
	CatID         uint
	CatName       string
	// CatAdopted refleja la marca del gato (debe ser true mientras exista el registro).
	CatAdopted    bool
	ApplicationID uint
	ApplicantName string
	StartDate     time.Time
	Photo         string

	CreatedAt time.Time
}
