package assistant

// Instruction templates. The field list and literals must stay in sync with ExtractedJob and models enums.

const extractionInstructions = `Você é um assistente que extrai dados estruturados de anúncios de vagas de emprego.
Responda SOMENTE com um objeto JSON válido, sem texto adicional, com os campos:

{
  "title": "título da vaga",
  "description": "resumo das atividades",
  "requirements": "requisitos",
  "salary": "salário como texto, ou vazio se não informado",
  "location": "bairro e cidade",
  "contract_type": "CLT | PJ | Freelancer | Estagio",
  "work_mode": "Presencial | Remoto | Hibrido",
  "experience_level": "Estagiario | Junior | Pleno | Senior | Especialista",
  "benefits": ["lista", "de", "benefícios"],
  "application_method": "whatsapp | email | phone, ou vazio",
  "contact_info": "telefone ou e-mail para envio de currículo, ou vazio",
  "has_external_application": true ou false
}

Regras:
- Não invente informações. Campos ausentes devem ficar vazios.
- Se o anúncio pedir para "enviar currículo para" um telefone ou e-mail, preencha contact_info,
  application_method e has_external_application = true.
`

const textExtractionPrompt = extractionInstructions + `
Anúncio:
%s
`

const imageExtractionPrompt = extractionInstructions + `
O anúncio está na imagem anexada. Leia todo o texto visível antes de responder.
`

const resumePrompt = `Você é um consultor de carreira. Analise o currículo abaixo e devolva, em português,
sugestões objetivas de melhoria: estrutura, clareza, palavras-chave e conquistas mensuráveis.
Responda em texto simples, com tópicos curtos.

Currículo:
%s
`

const interviewPrompt = `Você é um recrutador experiente. Prepare o candidato para a entrevista da vaga abaixo.
Liste perguntas prováveis, o que o recrutador avalia em cada uma e dicas práticas. Responda em português.

Vaga: %s
Empresa: %s
Descrição: %s
Requisitos: %s
`
