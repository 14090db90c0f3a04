package setup

// CustomCategory is the category of services that match no known one.
const CustomCategory = "Personalizado"

type categoryServices struct {
	Category string
	Services []string
}

var defaultCatalog = []categoryServices{
	{"Cabeleireiro(a)", []string{"Corte feminino", "Escova", "Hidratação", "Coloração", "Penteado para eventos"}},
	{"Barbeiro(a)", []string{"Corte masculino degradê (fade)", "Camuflagem de fios brancos", "Corte na máquina", "Barboterapia"}},
	{"Nail Designer", []string{"Alongamento de unhas em fibra", "Esmaltação em gel", "Nail art personalizada", "Blindagem", "Manutenção de alongamento"}},
	{"Depiladora", []string{"Depilação com cera pernas", "Depilação com cera axilas", "Depilação com cera buço", "Depilação íntima feminina", "Depilação facial com linha"}},
	{"Maquiador(a)", []string{"Maquiagem social", "Maquiagem noivas", "Maquiagem artística", "Maquiagem para fotos e vídeos", "Curso de automaquiagem"}},
	{"Designer de Sobrancelhas", []string{"Design com pinça", "Design com henna", "Sobrancelha egípcia com linha"}},
	{"Lash Designer (cílios)", []string{"Extensão de cílios fio a fio", "Volume russo", "Híbrido", "Lifting de cílios", "Remoção de extensão"}},
	{"Esteticista", []string{"Limpeza de pele profunda", "Peeling químico", "Revitalização facial", "Tratamento para acne", "Microagulhamento"}},
	{"Massoterapeuta", []string{"Massagem relaxante", "Massagem modeladora", "Drenagem linfática", "Reflexologia podal", "Shiatsu"}},
	{"Terapeuta Capilar", []string{"Detox capilar", "Terapia para queda de cabelo", "Terapia para oleosidade", "Terapia para caspa e dermatite", "Terapia de fortalecimento capilar com led ou ozônio"}},
	{"Visagista", []string{"Consultoria de imagem pessoal", "Recomendação personalizada de corte e cor", "Harmonização visual (cabelo + sobrancelha + estilo)"}},
}
