package service

const defaultWorkerCount = 4
