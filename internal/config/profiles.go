package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var defaultProfiles []byte

var ErrUnknownCountry = errors.New("país não configurado")

// Profiles indexa os perfis de país pela chave (vzla, col, argentina)
type Profiles map[string]*CountryProfile

// CountryProfile reúne tudo o que muda de um país para outro: fontes de taxas,
// tabelas do warehouse, caminho e layout do template e regras de pagamento
type CountryProfile struct {
	Key                string              `yaml:"-"`
	Name               string              `yaml:"name"`
	Aliases            []string            `yaml:"aliases"`
	LocalCurrency      string              `yaml:"local_currency"`
	ConversionCurrency string              `yaml:"conversion_currency"`
	Rates              RateSources         `yaml:"rates"`
	Warehouse          WarehouseTables     `yaml:"warehouse"`
	Template           TemplateLayout      `yaml:"template"`
	Payment            PaymentRules        `yaml:"payment"`
	HeaderAliases      map[string][]string `yaml:"header_aliases"`
}

type RateSources struct {
	FeedURL          string `yaml:"feed_url"`
	CentralBankTable string `yaml:"central_bank_table"`
	LookbackDays     int    `yaml:"lookback_days"`
}

type WarehouseTables struct {
	DetailTable     string `yaml:"detail_table"`
	DifferenceTable string `yaml:"difference_table"`
}

type TemplateLayout struct {
	Path          string         `yaml:"path"`
	Bosqueto      Region         `yaml:"bosqueto"`
	Detail        Region         `yaml:"detail"`
	PaidByReceipt *Region        `yaml:"paid_by_receipt"`
	Titles        []TitleCell    `yaml:"titles"`
	Rollover      RolloverLayout `yaml:"rollover"`
}

// Region é uma área retangular do template com cabeçalho e capacidade fixa de linhas
type Region struct {
	Sheet       string `yaml:"sheet"`
	HeaderRow   int    `yaml:"header_row"`
	FirstRow    int    `yaml:"first_row"`
	FirstColumn string `yaml:"first_column"`
	Capacity    int    `yaml:"capacity"`
}

// LastRow é a última linha que pode receber dados
func (r Region) LastRow() int {
	return r.FirstRow + r.Capacity - 1
}

// TitleCell é uma célula de título reescrita no fechamento; Format aceita {current} e {previous}
type TitleCell struct {
	Sheet  string `yaml:"sheet"`
	Cell   string `yaml:"cell"`
	Format string `yaml:"format"`
}

type RolloverLayout struct {
	Sheet            string `yaml:"sheet"`
	Rows             []int  `yaml:"rows"`
	ExcludedRows     []int  `yaml:"excluded_rows"`
	AreaColumn       string `yaml:"area_column"`
	RemainderColumn  string `yaml:"remainder_column"`
	BudgetColumn     string `yaml:"budget_column"`
	DifferenceColumn string `yaml:"difference_column"`
}

// IsExcluded informa se a linha nunca deve ser tocada pelo fechamento
func (r RolloverLayout) IsExcluded(row int) bool {
	for _, excluded := range r.ExcludedRows {
		if excluded == row {
			return true
		}
	}
	return false
}

type PriorityRule struct {
	Value      string `yaml:"value"`
	Priorities []int  `yaml:"priorities"`
}

type PaymentRules struct {
	Currency          []PriorityRule `yaml:"currency"`
	DefaultCurrency   string         `yaml:"default_currency"`
	Method            []PriorityRule `yaml:"method"`
	DefaultMethod     string         `yaml:"default_method"`
	DayRules          []PriorityRule `yaml:"day"`
	DefaultDay        string         `yaml:"default_day"`
	CriticalColumns   []string       `yaml:"critical_columns"`
	IgnoredColumns    []string       `yaml:"ignored_columns"`
	HeaderSearchDepth int            `yaml:"header_search_depth"`
}

// Resolve aplica as regras por prioridade e retorna o valor padrão quando nenhuma casa
func Resolve(rules []PriorityRule, priority int, fallback string) string {
	for _, rule := range rules {
		for _, p := range rule.Priorities {
			if p == priority {
				return rule.Value
			}
		}
	}
	return fallback
}

// LoadProfiles lê os perfis do arquivo informado ou, se vazio, do arquivo embutido
func LoadProfiles(path string) (Profiles, error) {
	content := defaultProfiles
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler arquivo de perfis %s: %w", path, err)
		}
		content = data
	}

	return ParseProfiles(content)
}

// ParseProfiles interpreta o YAML de perfis e valida cada um
func ParseProfiles(content []byte) (Profiles, error) {
	var raw map[string]*CountryProfile
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("erro ao interpretar perfis: %w", err)
	}

	profiles := make(Profiles, len(raw))
	for key, profile := range raw {
		if profile == nil {
			return nil, fmt.Errorf("perfil %s vazio", key)
		}
		profile.Key = strings.ToLower(strings.TrimSpace(key))
		if err := profile.Validate(); err != nil {
			return nil, err
		}
		profiles[profile.Key] = profile
	}

	return profiles, nil
}

// Get busca um perfil pela chave ou por um de seus aliases
func (p Profiles) Get(country string) (*CountryProfile, error) {
	key := strings.ToLower(strings.TrimSpace(country))
	if profile, ok := p[key]; ok {
		return profile, nil
	}
	for _, profile := range p {
		for _, alias := range profile.Aliases {
			if strings.EqualFold(alias, key) {
				return profile, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCountry, country)
}

// Keys retorna as chaves ordenadas
func (p Profiles) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (c *CountryProfile) Validate() error {
	var missing []string
	if c.LocalCurrency == "" {
		missing = append(missing, "local_currency")
	}
	if c.ConversionCurrency == "" {
		missing = append(missing, "conversion_currency")
	}
	if c.Rates.CentralBankTable == "" {
		missing = append(missing, "rates.central_bank_table")
	}
	if c.Warehouse.DetailTable == "" {
		missing = append(missing, "warehouse.detail_table")
	}
	if c.Warehouse.DifferenceTable == "" {
		missing = append(missing, "warehouse.difference_table")
	}
	if c.Template.Path == "" {
		missing = append(missing, "template.path")
	}
	for name, region := range map[string]Region{"bosqueto": c.Template.Bosqueto, "detail": c.Template.Detail} {
		if region.Sheet == "" || region.FirstRow <= region.HeaderRow || region.Capacity <= 0 || region.FirstColumn == "" {
			missing = append(missing, "template."+name)
		}
	}
	if c.Template.Rollover.Sheet == "" || len(c.Template.Rollover.Rows) == 0 {
		missing = append(missing, "template.rollover")
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("perfil %s inválido, campos ausentes: %s", c.Key, strings.Join(missing, ", "))
	}

	for _, row := range c.Template.Rollover.Rows {
		if c.Template.Rollover.IsExcluded(row) {
			return fmt.Errorf("perfil %s inválido, linha %d do fechamento está em excluded_rows", c.Key, row)
		}
	}

	if c.Payment.HeaderSearchDepth <= 0 {
		c.Payment.HeaderSearchDepth = 10
	}
	if len(c.Payment.CriticalColumns) == 0 {
		c.Payment.CriticalColumns = []string{"Monto", "Moneda", "Proveedor"}
	}
	return nil
}
