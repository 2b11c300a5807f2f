package synth

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Vocab holds the finite vocabularies the generator samples from. Any list
// left empty in an override file keeps its default.
type Vocab struct {
	Names        []string `yaml:"names"`
	Campaigns    []string `yaml:"campaigns"`
	Specialists  []string `yaml:"specialists"`
	AgeBrackets  []string `yaml:"age_brackets"`
	PlanStatuses []string `yaml:"plan_statuses"`
	PlanTypes    []string `yaml:"plan_types"`
	Sources      []string `yaml:"sources"`
	Summaries    []string `yaml:"summaries"`
	EmailDomains []string `yaml:"email_domains"`
	AreaCodes    []string `yaml:"area_codes"`
}

// DefaultVocab returns the built-in vocabularies.
func DefaultVocab() Vocab {
	return Vocab{
		Names: []string{
			"João Silva", "Maria Santos", "Pedro Oliveira", "Ana Costa", "Carlos Pereira",
			"Lucia Fernandes", "Rafael Souza", "Juliana Lima", "Marco Antonio", "Patrícia Alves",
			"Fernando Rocha", "Camila Ribeiro", "Diego Martins", "Isabela Moreira", "Rodrigo Cardoso",
			"Beatriz Nunes", "Gabriel Torres", "Larissa Castro", "Thiago Barbosa", "Viviane Dias",
			"Leonardo Gomes", "Priscila Ramos", "André Monteiro", "Carolina Freitas", "Bruno Carvalho",
			"Melissa Silva", "Gustavo Araújo", "Natália Correia", "Felipe Pinto", "Vanessa Lopes",
			"Marcelo Reis", "Daniela Ferreira", "Alexandre Mendes", "Renata Vieira", "Vinicius Teixeira",
		},
		Campaigns: []string{
			"Instagram Julho 2025", "Facebook Saúde", "Google Ads Família", "LinkedIn Empresarial",
			"TikTok Jovens", "YouTube Educativo", "WhatsApp Direct", "Email Marketing",
			"Indicação Médica", "Parceria Farmácia", "Evento Corporativo", "Webinar Saúde",
		},
		Specialists: []string{
			"Dr. João Cardiologista", "Dra. Maria Pediatra", "Dr. Carlos Ortopedista",
			"Dra. Ana Ginecologista", "Dr. Pedro Neurologista", "Dra. Lucia Dermatologista",
			"Dr. Rafael Endocrinologista", "Dra. Juliana Psiquiatra", "Dr. Marco Urologista",
			"Dra. Patrícia Oftalmologista",
		},
		AgeBrackets:  []string{"18-25", "26-35", "36-45", "46-55", "56-65", "65+"},
		PlanStatuses: []string{"Sim", "Não"},
		PlanTypes:    []string{"Individual", "Familiar", "Empresarial"},
		Sources:      []string{"WhatsApp", "Site", "Telefone", "Email", "Presencial"},
		Summaries: []string{
			"Cliente interessado em plano individual básico",
			"Família procurando cobertura completa",
			"Empresa buscando plano corporativo",
			"Pessoa física com histórico médico",
			"Jovem casal planejando família",
			"Aposentado necessitando cobertura",
			"Profissional liberal autonomo",
			"Executivo com plano empresarial",
			"Estudante universitário",
			"Mãe solteira com filhos pequenos",
		},
		EmailDomains: []string{"gmail.com", "hotmail.com", "yahoo.com.br", "outlook.com", "uol.com.br"},
		AreaCodes:    []string{"11", "21", "31", "41", "51", "61", "71", "81", "85", "87"},
	}
}

// LoadVocab reads a vocabulary override from a YAML file, filling any list
// the file omits with its default.
func LoadVocab(path string) (Vocab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocab{}, eris.Wrapf(err, "synth: read vocab %s", path)
	}

	var v Vocab
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Vocab{}, eris.Wrap(err, "synth: parse vocab")
	}

	def := DefaultVocab()
	fill := func(dst *[]string, fallback []string) {
		if len(*dst) == 0 {
			*dst = fallback
		}
	}
	fill(&v.Names, def.Names)
	fill(&v.Campaigns, def.Campaigns)
	fill(&v.Specialists, def.Specialists)
	fill(&v.AgeBrackets, def.AgeBrackets)
	fill(&v.PlanStatuses, def.PlanStatuses)
	fill(&v.PlanTypes, def.PlanTypes)
	fill(&v.Sources, def.Sources)
	fill(&v.Summaries, def.Summaries)
	fill(&v.EmailDomains, def.EmailDomains)
	fill(&v.AreaCodes, def.AreaCodes)

	return v, nil
}
