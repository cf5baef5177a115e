package assistant

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"vagaspg_backend/internal/models"
	"vagaspg_backend/pkg/apperrors"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Literal defaults for fields the model left out.
const (
	DefaultSalary          = "A combinar"
	DefaultContractType    = models.ContractTypeCLT
	DefaultWorkMode        = models.WorkModeOnSite
	DefaultExperienceLevel = models.ExperienceJunior
)

// ExtractedJob is the model reply as parsed. Every field is optional.
type ExtractedJob struct {
	Title                  *string  `json:"title"`
	Description            *string  `json:"description"`
	Requirements           *string  `json:"requirements"`
	Salary                 *string  `json:"salary"`
	Location               *string  `json:"location"`
	ContractType           *string  `json:"contract_type"`
	WorkMode               *string  `json:"work_mode"`
	ExperienceLevel        *string  `json:"experience_level"`
	Benefits               []string `json:"benefits"`
	ApplicationMethod      *string  `json:"application_method"`
	ContactInfo            *string  `json:"contact_info"`
	HasExternalApplication *bool    `json:"has_external_application"`
}

// UnmarshalJSON decodes each field loosely. Numbers become strings, a comma
// separated string becomes a list and "true"/"sim" style strings become
// booleans. A value of any other shape is treated as absent.
func (e *ExtractedJob) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fields := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		fields[strings.ToLower(strings.TrimSpace(k))] = v
	}

	*e = ExtractedJob{
		Title:                  looseString(fields["title"]),
		Description:            looseString(fields["description"]),
		Requirements:           looseString(fields["requirements"]),
		Salary:                 looseString(fields["salary"]),
		Location:               looseString(fields["location"]),
		ContractType:           looseString(fields["contract_type"]),
		WorkMode:               looseString(fields["work_mode"]),
		ExperienceLevel:        looseString(fields["experience_level"]),
		Benefits:               looseList(fields["benefits"]),
		ApplicationMethod:      looseString(fields["application_method"]),
		ContactInfo:            looseString(fields["contact_info"]),
		HasExternalApplication: looseBool(fields["has_external_application"]),
	}
	return nil
}

func decodeLoose(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}

func scalarString(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	}
	return "", false
}

func looseString(raw json.RawMessage) *string {
	if s, ok := scalarString(decodeLoose(raw)); ok {
		return &s
	}
	return nil
}

func looseList(raw json.RawMessage) []string {
	switch t := decodeLoose(raw).(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := scalarString(item); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		var out []string
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return nil
}

func looseBool(raw json.RawMessage) *bool {
	var b bool
	switch t := decodeLoose(raw).(type) {
	case bool:
		b = t
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil
		}
		b = f != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "sim", "yes", "1":
			b = true
		case "false", "nao", "não", "no", "0":
			b = false
		default:
			return nil
		}
	default:
		return nil
	}
	return &b
}

// JobDraft is the normalized extraction result. No field is ever missing.
type JobDraft struct {
	Title                  string                   `json:"title"`
	Description            string                   `json:"description"`
	Requirements           string                   `json:"requirements"`
	Salary                 string                   `json:"salary"`
	Location               string                   `json:"location"`
	ContractType           models.ContractType      `json:"contract_type"`
	WorkMode               models.WorkMode          `json:"work_mode"`
	ExperienceLevel        models.ExperienceLevel   `json:"experience_level"`
	Benefits               []string                 `json:"benefits"`
	ApplicationMethod      models.ApplicationMethod `json:"application_method"`
	ContactInfo            string                   `json:"contact_info"`
	HasExternalApplication bool                     `json:"has_external_application"`
}

// NormalizeOptions carries the configured location rules.
type NormalizeOptions struct {
	DefaultCity string
	// CityWhitelist is applied only when non-empty (image extraction).
	CityWhitelist []string
	// SourceText enables the "enviar currículo para" contact fallback.
	SourceText string
}

var codeFence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n?(.*?)\\s*```$")

// StripCodeFence removes a surrounding ``` or ```json fence.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if m := codeFence.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// ParseExtraction strips fences and decodes a JSON object.
// Anything that is not a JSON object is an ExtractionParseError.
func ParseExtraction(raw string) (*ExtractedJob, error) {
	body := StripCodeFence(raw)
	if !strings.HasPrefix(body, "{") {
		return nil, apperrors.ErrExtractionParse(nil)
	}

	var out ExtractedJob
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return nil, apperrors.ErrExtractionParse(err)
	}
	return &out, nil
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// Normalize fills defaults for every absent or empty field.
func Normalize(in *ExtractedJob, opts NormalizeOptions) JobDraft {
	if in == nil {
		in = &ExtractedJob{}
	}

	d := JobDraft{
		Title:        str(in.Title),
		Description:  str(in.Description),
		Requirements: str(in.Requirements),
		Salary:       str(in.Salary),
		Location:     str(in.Location),
		ContactInfo:  str(in.ContactInfo),
		Benefits:     uniqueTrimmed(in.Benefits),
	}

	if d.Salary == "" {
		d.Salary = DefaultSalary
	}
	if d.Location == "" {
		d.Location = opts.DefaultCity
	}
	if len(opts.CityWhitelist) > 0 && !containsAnyCity(d.Location, opts.CityWhitelist) {
		d.Location = opts.DefaultCity
	}

	d.ContractType = parseContractType(str(in.ContractType))
	d.WorkMode = parseWorkMode(str(in.WorkMode))
	d.ExperienceLevel = parseExperience(str(in.ExperienceLevel))
	d.ApplicationMethod = parseMethod(str(in.ApplicationMethod))

	external := in.HasExternalApplication != nil && *in.HasExternalApplication

	if d.ContactInfo == "" && opts.SourceText != "" {
		if contact, method, ok := FindResumeContact(opts.SourceText); ok {
			d.ContactInfo = contact
			d.ApplicationMethod = method
			external = true
		}
	}

	if d.ContactInfo != "" && d.ApplicationMethod == "" {
		d.ApplicationMethod = guessMethod(d.ContactInfo)
	}

	// The flag only holds when both the method and the contact are known.
	d.HasExternalApplication = external && d.ContactInfo != "" && d.ApplicationMethod != ""

	return d
}

func uniqueTrimmed(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		key := fold(it)
		if it == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}

// fold lowercases and strips diacritics ("Júnior" -> "junior").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

func containsAnyCity(location string, cities []string) bool {
	loc := fold(location)
	for _, c := range cities {
		if c = fold(c); c != "" && strings.Contains(loc, c) {
			return true
		}
	}
	return false
}

func parseContractType(s string) models.ContractType {
	switch fold(s) {
	case "clt", "efetivo":
		return models.ContractTypeCLT
	case "pj":
		return models.ContractTypePJ
	case "freelancer", "freela", "autonomo":
		return models.ContractTypeFreelancer
	case "estagio", "internship":
		return models.ContractTypeInternship
	}
	return DefaultContractType
}

func parseWorkMode(s string) models.WorkMode {
	switch fold(s) {
	case "presencial", "onsite", "on-site":
		return models.WorkModeOnSite
	case "remoto", "remote", "home office":
		return models.WorkModeRemote
	case "hibrido", "hybrid":
		return models.WorkModeHybrid
	}
	return DefaultWorkMode
}

func parseExperience(s string) models.ExperienceLevel {
	switch fold(s) {
	case "estagiario", "intern":
		return models.ExperienceIntern
	case "junior":
		return models.ExperienceJunior
	case "pleno", "mid":
		return models.ExperienceMid
	case "senior":
		return models.ExperienceSenior
	case "especialista", "specialist":
		return models.ExperienceSpecialist
	}
	return DefaultExperienceLevel
}

func parseMethod(s string) models.ApplicationMethod {
	switch fold(s) {
	case "whatsapp", "whats", "zap":
		return models.ApplicationMethodWhatsApp
	case "email", "e-mail":
		return models.ApplicationMethodEmail
	case "phone", "telefone", "ligacao":
		return models.ApplicationMethodPhone
	}
	return ""
}

func guessMethod(contact string) models.ApplicationMethod {
	if strings.Contains(contact, "@") {
		return models.ApplicationMethodEmail
	}
	return models.ApplicationMethodWhatsApp
}

var (
	resumePhrase = regexp.MustCompile(`enviar\s+(?:o\s+|seu\s+)?curriculos?\s+(?:para|pelo|no|via)\s*:?\s*`)
	emailPattern = regexp.MustCompile(`[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\(?\d{2,3}\)?[\s.\-]?\d{4,5}[\s.\-]?\d{4}`)
)

// FindResumeContact looks for a phone or email right after "enviar currículo para".
func FindResumeContact(text string) (string, models.ApplicationMethod, bool) {
	folded := fold(text)
	loc := resumePhrase.FindStringIndex(folded)
	if loc == nil {
		return "", "", false
	}

	tail := folded[loc[1]:]
	if len(tail) > 120 {
		tail = tail[:120]
	}

	if m := emailPattern.FindStringIndex(tail); m != nil && m[0] < 20 {
		return tail[m[0]:m[1]], models.ApplicationMethodEmail, true
	}
	if m := phonePattern.FindString(tail); m != "" {
		return strings.TrimSpace(m), models.ApplicationMethodWhatsApp, true
	}
	if m := emailPattern.FindString(tail); m != "" {
		return m, models.ApplicationMethodEmail, true
	}
	return "", "", false
}
